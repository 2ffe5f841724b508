package cache

import (
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/librepcb/partsgen/internal/cmd/base"
)

// Command groups the identity cache subcommands.
type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect identity cache files"
}

func (c *Command) Help() string {
	return `Usage: partsgen cache <subcommand> [options] [args]

  This command groups subcommands for inspecting the identity cache files
  that keep element identifiers stable across regenerations.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

func fsOrOS(fs afero.Fs) afero.Fs {
	if fs == nil {
		return afero.NewOsFs()
	}
	return fs
}
