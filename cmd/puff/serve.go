package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/puffgame/puff/internal/platform/tui"
)

var (
	serveHost        string
	servePort        int
	serveHostKey     string
	serveIdleMinutes int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server so others can play puff remotely:

  ssh -p 23234 yourhost

Each connection gets its own session sized to its terminal. Results of
every player land in the shared database.

Examples:
  puff serve
  puff serve --host 0.0.0.0 --port 2222
  puff serve --idle-timeout 10`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default: all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", 23234, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHostKey, "host-key", "~/.puff/host_key", "Path to the SSH host key (generated if missing)")
	serveCmd.Flags().IntVar(&serveIdleMinutes, "idle-timeout", 30, "Minutes before an idle session is dropped")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustConfig()

	sshCfg := tui.SSHConfig{
		Address:     fmt.Sprintf("%s:%d", serveHost, servePort),
		HostKeyPath: serveHostKey,
		DBPath:      cfg.Storage.Database,
		IdleTimeout: time.Duration(serveIdleMinutes) * time.Minute,
	}

	server, err := tui.NewSSHServer(sshCfg, cfg.Runtime(0, 0))
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	fmt.Printf("Serving puff over SSH on %s\n", sshCfg.Address)
	fmt.Printf("Connect with: ssh -p %d <this host>\n", servePort)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
