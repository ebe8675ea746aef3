package cmd

import (
	"fmt"

	"workbench/internal/config"
	"workbench/internal/logging"
	"workbench/internal/server"
	"workbench/internal/ui"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file checked for client keys (default ~/.ssh/authorized_keys)"`
	Host           string `help:"Host to bind to (default from settings or localhost)"`
	Port           int    `help:"Port to listen on (default from settings or 23235)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	host, port := cli.settings.SSHAddress()
	if s.Host != "" {
		host = s.Host
	}
	if s.Port > 0 {
		port = s.Port
	}

	logging.Logger.Info("Starting workbench SSH server", "host", host, "port", port)

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		HostKeyPath:        config.GetHostKeyPath(),
		Host:               host,
		Port:               port,
	}, func() (*ui.Model, func()) {
		// SSH sessions never run in dev mode
		run := RunCmd{}
		run.applySettings(cli.settings)
		return NewTUIModel(cli.Container, cli.settings, run.Editor, false, run.ShowIgnored, run.interval(cli.settings))
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
