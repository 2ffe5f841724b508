package cache

import (
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

type CheckCommand struct {
	*base.Command

	// Fs is the filesystem cache files are read from. Nil means the OS
	// filesystem.
	Fs afero.Fs
}

func (c *CheckCommand) Synopsis() string {
	return "Validate identity cache files"
}

func (c *CheckCommand) Help() string {
	return `Usage: partsgen cache check <file>...

  This command validates identity cache files. Every malformed line and
  duplicate key is reported. The exit code is 1 if any file is missing or
  corrupt.` +
		c.Flags().Help()
}

func (c *CheckCommand) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("check", flag.ContinueOnError))
}

func (c *CheckCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() == 0 {
		c.UI.Error("expected at least one cache file argument")
		return 1
	}

	fs := fsOrOS(c.Fs)
	exitCode := 0
	for _, path := range flags.Args() {
		if ok, err := afero.Exists(fs, path); err != nil || !ok {
			c.UI.Error(fmt.Sprintf("%s: file not found", path))
			exitCode = 1
			continue
		}
		cache, err := uuidcache.Load(fs, path, uuidcache.WithLogger(c.Log.Named("cache")))
		if err != nil {
			c.UI.Error(err.Error())
			exitCode = 1
			continue
		}
		c.UI.Info(fmt.Sprintf("%s: ok, %d entries", path, cache.Len()))
	}
	return exitCode
}
