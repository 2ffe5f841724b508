package generate

import (
	"fmt"
	"time"

	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/internal/generators"
	"github.com/librepcb/partsgen/internal/generators/connectors"
	"github.com/librepcb/partsgen/pkg/entity"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

// ConnectorsCommand generates the 1xN socket strip family.
type ConnectorsCommand struct {
	familyCommand
}

func (c *ConnectorsCommand) Synopsis() string {
	return "Generate 1xN socket strip packages"
}

func (c *ConnectorsCommand) Help() string {
	return `Usage: partsgen generate connectors [options]

  This command generates 2.54 mm pitch 1xN socket strip packages, one for
  each pin count in the configured range.` +
		c.flags("connectors").Help()
}

func (c *ConnectorsCommand) Run(args []string) int {
	cfg, ok := c.parse(c.flags("connectors"), args)
	if !ok {
		return 1
	}

	conf := cfg.Connectors
	created, err := conf.Package.CreatedAt(time.Now())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error in connectors config: %v", err))
		return 1
	}
	category, _, err := conf.Package.CategoryUUID()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error in connectors config: %v", err))
		return 1
	}

	opts := connectors.Options{
		MinPads:  conf.MinPads,
		MaxPads:  conf.MaxPads,
		Author:   entity.Author(conf.Package.Author),
		Version:  entity.Version(conf.Package.Version),
		Category: category,
		Created:  created,
	}
	return c.run(cfg.LibraryDir(conf.Library), cfg.CachePath(conf.Cache),
		func(cache *uuidcache.Cache) generators.Generator {
			return connectors.New(cache, opts, c.Log)
		})
}

// NewConnectorsCommand returns the command writing to the OS filesystem.
func NewConnectorsCommand(b *base.Command) *ConnectorsCommand {
	return &ConnectorsCommand{familyCommand: familyCommand{Command: b}}
}
