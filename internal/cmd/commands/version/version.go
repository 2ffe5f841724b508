package version

import (
	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the partsgen version"
}

func (c *Command) Help() string {
	return `Usage: partsgen version

  This command prints the version of partsgen.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("partsgen v" + version.Version)
	return 0
}
