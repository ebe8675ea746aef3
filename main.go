package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"workbench/internal/cmd"
	"workbench/internal/config"
	"workbench/internal/ui"
	"workbench/internal/version"
)

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    version.Commit,
		Date:      version.Date,
		GoVersion: version.GoVersion,
		Tagline:   version.Tagline,
		Version:   version.Version,
	})

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("workbench"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
