package generate

import (
	"fmt"
	"time"

	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/internal/config"
	"github.com/librepcb/partsgen/internal/generators"
	"github.com/librepcb/partsgen/internal/generators/led"
	"github.com/librepcb/partsgen/pkg/entity"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

// LEDCommand generates the THT LED family.
type LEDCommand struct {
	familyCommand
}

func (c *LEDCommand) Synopsis() string {
	return "Generate THT LED packages and devices"
}

func (c *LEDCommand) Help() string {
	return `Usage: partsgen generate led [options]

  This command generates a package and a device for each configured
  through-hole LED variant. Packages get vertical and horizontal footprints;
  devices bind the generic LED component to them.` +
		c.flags("led").Help()
}

func (c *LEDCommand) Run(args []string) int {
	cfg, ok := c.parse(c.flags("led"), args)
	if !ok {
		return 1
	}

	conf := cfg.LED
	now := time.Now()
	pkgMeta, err := ledMeta(conf.Package, now)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error in led package config: %v", err))
		return 1
	}
	devMeta, err := ledMeta(conf.Device, now)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error in led device config: %v", err))
		return 1
	}

	opts := led.Options{Package: pkgMeta, Device: devMeta}
	for _, v := range conf.Variants {
		opts.Variants = append(opts.Variants, led.Variant{
			TopDiameter:    v.TopDiameter,
			BotDiameter:    v.BotDiameter,
			LeadSpacing:    v.LeadSpacing,
			BodyHeight:     v.BodyHeight,
			Standoff:       v.Standoff,
			StandoffInName: v.StandoffInName,
			BodyColor:      v.BodyColor,
		})
	}

	return c.run(cfg.LibraryDir(conf.Library), cfg.CachePath(conf.Cache),
		func(cache *uuidcache.Cache) generators.Generator {
			return led.New(cache, opts, c.Log)
		})
}

func ledMeta(m *config.Metadata, now time.Time) (led.Meta, error) {
	created, err := m.CreatedAt(now)
	if err != nil {
		return led.Meta{}, err
	}
	category, _, err := m.CategoryUUID()
	if err != nil {
		return led.Meta{}, err
	}
	return led.Meta{
		Author:   entity.Author(m.Author),
		Version:  entity.Version(m.Version),
		Keywords: entity.Keywords(m.Keywords),
		Category: category,
		Created:  created,
	}, nil
}

// NewLEDCommand returns the command writing to the OS filesystem.
func NewLEDCommand(b *base.Command) *LEDCommand {
	return &LEDCommand{familyCommand: familyCommand{Command: b}}
}
