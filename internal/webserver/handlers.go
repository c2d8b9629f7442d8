package webserver

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/agusx1211/rulebook/internal/debug"
)

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Rulebook Preview</title>
<style>
  body { max-width: 860px; margin: 2rem auto; padding: 0 1rem;
         font-family: ui-sans-serif, system-ui, sans-serif; line-height: 1.6;
         color: #cdd6f4; background: #1e1e2e; }
  a { color: #89b4fa; }
  h1, h2, h3 { color: #b4befe; }
  code { background: #313244; padding: 0.15em 0.35em; border-radius: 4px; }
  pre { background: #313244; padding: 1rem; border-radius: 8px; overflow-x: auto; }
  pre code { background: none; padding: 0; }
  table { border-collapse: collapse; }
  th, td { border: 1px solid #45475a; padding: 0.4em 0.8em; }
  blockquote { border-left: 3px solid #585b70; margin-left: 0; padding-left: 1rem;
               color: #a6adc8; }
</style>
</head>
<body>
<main>
`

const pageFooter = `</main>
<script>
(function connect() {
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = (ev) => { if (ev.data === "reload") location.reload(); };
  ws.onclose = () => setTimeout(connect, 1000);
})();
</script>
</body>
</html>
`

// handlePage serves the rendered rulebook wrapped in the preview shell.
func (srv *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	body, err := srv.renderHTML()
	if err != nil {
		http.Error(w, "no rulebook generated yet, run `rulebook generate` first", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(pageShell))
	w.Write(body)
	w.Write([]byte(pageFooter))
}

// handleRaw serves the raw markdown.
func (srv *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	md, err := srv.st.ReadRulebook()
	if err != nil {
		http.Error(w, "no rulebook generated yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(md))
}

// handleReloadSocket holds a WebSocket open and sends "reload" whenever the
// rulebook file changes.
func (srv *Server) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}
	defer ws.CloseNow()

	ch := srv.subscribe()
	defer srv.unsubscribe(ch)
	debug.Log("webserver", "reload socket connected")

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-srv.done:
			ws.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case <-ch:
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := ws.Write(writeCtx, websocket.MessageText, []byte("reload"))
			cancel()
			if err != nil {
				return
			}
		}
	}
}
