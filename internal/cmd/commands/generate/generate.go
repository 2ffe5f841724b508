package generate

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/internal/config"
	"github.com/librepcb/partsgen/internal/generators"
	"github.com/librepcb/partsgen/pkg/library"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

// Command groups the generator subcommands.
type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Generate library elements"
}

func (c *Command) Help() string {
	return `Usage: partsgen generate <subcommand> [options]

  This command groups the part family generators. Each generator writes its
  elements into a library directory and keeps the identifiers it assigns in
  an identity cache file, so regenerating a family reuses them.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// familyCommand holds the flags and the run loop shared by all generator
// subcommands.
type familyCommand struct {
	*base.Command

	// Fs is the filesystem elements and caches are read from and written
	// to. Nil means the OS filesystem.
	Fs afero.Fs

	flagConfig   string
	flagOutput   string
	flagCacheDir string
	flagLogLevel string
	flagCheck    bool
}

func (c *familyCommand) flags(name string) *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(name, flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to a partsgen HCL config file. Built-in defaults are used when empty.",
	)
	f.StringVar(
		&c.flagOutput, "output", "",
		"Directory libraries are written to. Overrides output_dir.",
	)
	f.StringVar(
		&c.flagCacheDir, "cache-dir", "",
		"Directory holding the identity cache files. Overrides cache_dir.",
	)
	f.StringVar(
		&c.flagLogLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error). Overrides log_level.",
	)
	f.BoolVar(
		&c.flagCheck, "check", false,
		"Only report which elements or cache entries would change. Nothing is "+
			"written, and the exit code is 1 if anything is out of date.",
	)

	return f
}

// parse parses args and loads the configuration with flag overrides applied.
func (c *familyCommand) parse(f *base.FlagSet, args []string) (*config.Config, bool) {
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return nil, false
	}

	cfg := config.Default()
	if c.flagConfig != "" {
		var err error
		cfg, err = config.LoadFile(c.flagConfig)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error parsing config file: %v", err))
			return nil, false
		}
	}
	if c.flagOutput != "" {
		cfg.OutputDir = c.flagOutput
	}
	if c.flagCacheDir != "" {
		cfg.CacheDir = c.flagCacheDir
	}
	if c.flagLogLevel != "" {
		cfg.LogLevel = c.flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid configuration: %v", err))
		return nil, false
	}

	c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	return cfg, true
}

// run generates one family into libraryDir, resolving identifiers through
// the cache at cachePath.
func (c *familyCommand) run(libraryDir, cachePath string, build func(*uuidcache.Cache) generators.Generator) int {
	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if c.flagCheck {
		// Writes land in memory; reads fall through to the real files.
		fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fs), afero.NewMemMapFs())
	}

	cache, err := uuidcache.Load(fs, cachePath, uuidcache.WithLogger(c.Log.Named("cache")))
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading identity cache: %v", err))
		return 1
	}

	gen := build(cache)
	docs, err := gen.Generate()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error generating %s: %v", gen.Name(), err))
		return 1
	}

	w := library.NewWriter(fs, libraryDir, c.Log.Named(gen.Name()))
	var changed []library.Result
	for _, doc := range docs {
		res, err := w.Write(doc)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error writing element %s: %v", doc.UUID(), err))
			return 1
		}
		if res.Changed {
			changed = append(changed, res)
		}
	}

	added := cache.Added()
	if len(added) > 0 {
		if err := cache.Save(); err != nil {
			c.UI.Error(fmt.Sprintf("error saving identity cache: %v", err))
			return 1
		}
	}

	if c.flagCheck {
		for _, res := range changed {
			c.UI.Warn(fmt.Sprintf("out of date: %s", res.Dir))
		}
		for _, key := range added {
			c.UI.Warn(fmt.Sprintf("missing cache entry: %s", key))
		}
		if len(changed) > 0 || len(added) > 0 {
			c.UI.Error(fmt.Sprintf("%s: %d of %d elements out of date, %d new identifiers",
				gen.Name(), len(changed), len(docs), len(added)))
			return 1
		}
		c.UI.Info(fmt.Sprintf("%s: all %d elements up to date", gen.Name(), len(docs)))
		return 0
	}

	c.UI.Info(fmt.Sprintf("%s: generated %d elements (%d changed, %d new identifiers)",
		gen.Name(), len(docs), len(changed), len(added)))
	return 0
}
