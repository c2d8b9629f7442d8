package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/mdns"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/agusx1211/rulebook/internal/config"
	"github.com/agusx1211/rulebook/internal/theme"
	"github.com/agusx1211/rulebook/internal/webserver"
)

const previewMDNSServiceType = "_rulebook._tcp"

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the rulebook over HTTP with live reload",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringP("dir", "d", "", "Project directory (default: current directory)")
	previewCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from ~/.rulebook/config.json, else 8473)")
	previewCmd.Flags().String("host", "", "Host to bind to")
	previewCmd.Flags().Bool("expose", false, "Bind to 0.0.0.0 for LAN access")
	previewCmd.Flags().Bool("qr", false, "Print a QR code of the preview URL")
	previewCmd.Flags().Bool("mdns", false, "Advertise the preview on the local network via mDNS/Bonjour")
	previewCmd.Flags().Bool("open", false, "Open the preview in a browser")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")
	expose, _ := cmd.Flags().GetBool("expose")
	printQR, _ := cmd.Flags().GetBool("qr")
	enableMDNS, _ := cmd.Flags().GetBool("mdns")
	open, _ := cmd.Flags().GetBool("open")

	s, err := openStore(dir)
	if err != nil {
		return err
	}
	if !s.RulebookExists() {
		return fmt.Errorf("no rulebook at %s; run `rulebook generate` first", s.RulebookPath())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	if host == "" {
		host = cfg.PreviewHost()
	}
	if port <= 0 {
		port = cfg.PreviewPort()
	}
	if expose {
		host = "0.0.0.0"
		fmt.Fprintln(os.Stderr, "Warning: exposing the preview on all interfaces.")
	}

	srv := webserver.New(s, webserver.Options{Host: host, Port: port})
	if err := srv.Start(); err != nil {
		return err
	}
	url := srv.URL()

	// Clickable URL for terminals that support OSC 8 hyperlinks.
	fmt.Printf("\033]8;;%s\033\\%s\033]8;;\033\\\n", url, url)
	fmt.Println(theme.Info("Watching for changes; the page reloads when the rulebook is regenerated."))

	if printQR || (expose && !cfg.SkipPreviewQR) {
		if err := printPreviewQRCode(url); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to render QR code: %v\n", err)
		}
	}

	if open {
		if err := openBrowser(url); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open browser: %v\n", err)
		}
	}

	if expose || enableMDNS || cfg.Preview.MDNS {
		mdnsServer, err := startPreviewMDNSService(projectRoot(s), srv.Port(), url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to start mDNS advertisement: %v\n", err)
		} else {
			defer mdnsServer.Shutdown()
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down preview server: %w", err)
	}
	return nil
}

func startPreviewMDNSService(projectDir string, port int, url string) (*mdns.Server, error) {
	if port <= 0 {
		return nil, fmt.Errorf("invalid port for mDNS advertisement: %d", port)
	}
	name := strings.TrimSpace(projectName(projectDir))
	if name == "" {
		name = "rulebook"
	}
	txtRecords := []string{
		fmt.Sprintf("project=%s", name),
		fmt.Sprintf("url=%s", url),
	}
	service, err := mdns.NewMDNSService(name, previewMDNSServiceType, "local", "", port, nil, txtRecords)
	if err != nil {
		return nil, err
	}
	return mdns.NewServer(&mdns.Config{
		Zone: service,
	})
}

func printPreviewQRCode(url string) error {
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return err
	}
	fmt.Println(code.ToString(false))
	return nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", url).Start()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
