package cache

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

type ListCommand struct {
	*base.Command

	// Fs is the filesystem cache files are read from. Nil means the OS
	// filesystem.
	Fs afero.Fs

	flagPrefix string
}

func (c *ListCommand) Synopsis() string {
	return "Print the entries of an identity cache file"
}

func (c *ListCommand) Help() string {
	return `Usage: partsgen cache list [options] <file>

  This command prints the entries of an identity cache file sorted by key,
  one "key,uuid" pair per line.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))

	f.StringVar(
		&c.flagPrefix, "prefix", "",
		"Only print entries whose key starts with this prefix (e.g. \"pkg-1x4\").",
	)

	return f
}

func (c *ListCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		c.UI.Error("expected exactly one cache file argument")
		return 1
	}
	path := flags.Arg(0)

	fs := fsOrOS(c.Fs)
	if ok, err := afero.Exists(fs, path); err != nil || !ok {
		c.UI.Error(fmt.Sprintf("cache file not found: %s", path))
		return 1
	}
	cache, err := uuidcache.Load(fs, path)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading cache: %v", err))
		return 1
	}

	for _, key := range cache.Keys() {
		if !strings.HasPrefix(key, c.flagPrefix) {
			continue
		}
		id, _ := cache.Lookup(key)
		c.UI.Output(uuidcache.FormatLine(key, id))
	}
	return 0
}
