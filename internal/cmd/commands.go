package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/internal/cmd/commands/cache"
	"github.com/librepcb/partsgen/internal/cmd/commands/generate"
	"github.com/librepcb/partsgen/internal/cmd/commands/version"
)

// Commands is the mapping of all available partsgen commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &generate.Command{Command: b}, nil
		},
		"generate connectors": func() (cli.Command, error) {
			return generate.NewConnectorsCommand(b), nil
		},
		"generate led": func() (cli.Command, error) {
			return generate.NewLEDCommand(b), nil
		},
		"cache": func() (cli.Command, error) {
			return &cache.Command{Command: b}, nil
		},
		"cache list": func() (cli.Command, error) {
			return &cache.ListCommand{Command: b}, nil
		},
		"cache check": func() (cli.Command, error) {
			return &cache.CheckCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
