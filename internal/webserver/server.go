// Package webserver serves the generated rulebook as a live-reloading HTML
// page for review in a browser.
package webserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/agusx1211/rulebook/internal/debug"
	"github.com/agusx1211/rulebook/internal/store"
)

// Options configures preview server behavior.
type Options struct {
	Host string
	Port int
}

// Server hosts the rulebook preview page and its reload WebSocket.
type Server struct {
	st         *store.Store
	httpServer *http.Server
	host       string
	port       int
	md         goldmark.Markdown

	mu      sync.Mutex
	clients map[chan struct{}]struct{}

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// New constructs a preview server over the given project store.
func New(st *store.Store, opts Options) *Server {
	host := opts.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := opts.Port
	if port <= 0 {
		port = 8473
	}

	srv := &Server{
		st:      st,
		host:    host,
		port:    port,
		clients: make(map[chan struct{}]struct{}),
		done:    make(chan struct{}),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(htmlrenderer.WithHardWraps()),
		),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", srv.handlePage)
	mux.HandleFunc("GET /raw", srv.handleRaw)
	mux.HandleFunc("GET /ws", srv.handleReloadSocket)

	srv.httpServer = &http.Server{
		Addr:              srv.Addr(),
		Handler:           logMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv
}

// Start binds the listener, begins watching the rulebook for changes, and
// serves in a background goroutine.
func (srv *Server) Start() error {
	ln, err := net.Listen("tcp", srv.Addr())
	if err != nil {
		return fmt.Errorf("binding %s: %w", srv.Addr(), err)
	}
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		srv.port = tcpAddr.Port
		srv.httpServer.Addr = srv.Addr()
	}

	if err := srv.startWatcher(); err != nil {
		ln.Close()
		return err
	}

	go func() {
		if err := srv.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			debug.LogKV("webserver", "server stopped with error", "error", err)
		}
	}()
	return nil
}

// Shutdown stops the watcher and gracefully stops the HTTP server.
func (srv *Server) Shutdown(ctx context.Context) error {
	close(srv.done)
	if srv.watcher != nil {
		_ = srv.watcher.Close()
	}
	return srv.httpServer.Shutdown(ctx)
}

// Addr returns the bound host:port address.
func (srv *Server) Addr() string {
	return net.JoinHostPort(srv.host, strconv.Itoa(srv.port))
}

// URL returns the browsable address of the preview page.
func (srv *Server) URL() string {
	return "http://" + srv.Addr()
}

// Port returns the bound port (after Start, the actual one).
func (srv *Server) Port() int {
	return srv.port
}

// startWatcher watches the .rulebook directory and notifies connected
// sockets when the rulebook file changes. The directory (not the file) is
// watched because atomic renames replace the inode.
func (srv *Server) startWatcher() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	if err := w.Add(srv.st.Root()); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", srv.st.Root(), err)
	}
	srv.watcher = w

	go func() {
		for {
			select {
			case <-srv.done:
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Name != srv.st.RulebookPath() {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				debug.LogKV("webserver", "rulebook changed", "op", event.Op.String())
				srv.broadcastReload()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				debug.LogKV("webserver", "watcher error", "error", err)
			}
		}
	}()
	return nil
}

// broadcastReload pings every connected reload socket.
func (srv *Server) broadcastReload() {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	for ch := range srv.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (srv *Server) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	srv.mu.Lock()
	srv.clients[ch] = struct{}{}
	srv.mu.Unlock()
	return ch
}

func (srv *Server) unsubscribe(ch chan struct{}) {
	srv.mu.Lock()
	delete(srv.clients, ch)
	srv.mu.Unlock()
}

// renderHTML converts the current rulebook markdown to an HTML fragment.
func (srv *Server) renderHTML() ([]byte, error) {
	md, err := srv.st.ReadRulebook()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := srv.md.Convert([]byte(md), &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.Bytes(), nil
}
