// Package config loads the partsgen configuration from an HCL file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/librepcb/partsgen/pkg/ident"
)

// Config is the top-level configuration.
type Config struct {
	// OutputDir is the directory libraries are written to.
	OutputDir string `hcl:"output_dir,optional"`

	// CacheDir is the directory holding the identity cache files.
	CacheDir string `hcl:"cache_dir,optional"`

	// LogLevel is the hclog level name (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`

	Connectors *Connectors `hcl:"connectors,block"`
	LED        *LED        `hcl:"led,block"`
}

// Metadata holds the library element header values a generator stamps on
// every element it writes.
type Metadata struct {
	Author   string `hcl:"author,optional"`
	Version  string `hcl:"version,optional"`
	Keywords string `hcl:"keywords,optional"`
	Category string `hcl:"category,optional"`

	// Created is the creation timestamp. Any format dateparse understands is
	// accepted; empty means the time of the run.
	Created string `hcl:"created,optional"`
}

// Connectors configures the socket strip generator.
type Connectors struct {
	Library string    `hcl:"library,optional"`
	Cache   string    `hcl:"cache,optional"`
	MinPads int       `hcl:"min_pads,optional"`
	MaxPads int       `hcl:"max_pads,optional"`
	Package *Metadata `hcl:"package,block"`
}

// LED configures the THT LED generator.
type LED struct {
	Library  string       `hcl:"library,optional"`
	Cache    string       `hcl:"cache,optional"`
	Package  *Metadata    `hcl:"package,block"`
	Device   *Metadata    `hcl:"device,block"`
	Variants []LEDVariant `hcl:"variant,block"`
}

// LEDVariant describes one LED body. Dimensions are in millimeters.
type LEDVariant struct {
	TopDiameter    float64 `hcl:"top_diameter"`
	BotDiameter    float64 `hcl:"bot_diameter"`
	LeadSpacing    float64 `hcl:"lead_spacing"`
	BodyHeight     float64 `hcl:"body_height"`
	Standoff       float64 `hcl:"standoff"`
	StandoffInName bool    `hcl:"standoff_in_name,optional"`
	BodyColor      string  `hcl:"body_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile loads the configuration file at filename, fills in defaults for
// everything it leaves out and validates the result.
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	var cfg Config
	if err := hclsimple.DecodeFile(filename, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.CacheDir == "" {
		c.CacheDir = "."
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Connectors == nil {
		c.Connectors = &Connectors{}
	}
	c.Connectors.applyDefaults()

	if c.LED == nil {
		c.LED = &LED{}
	}
	c.LED.applyDefaults()
}

func (c *Connectors) applyDefaults() {
	if c.Library == "" {
		c.Library = "connectors"
	}
	if c.Cache == "" {
		c.Cache = "uuid_cache_connectors.csv"
	}
	if c.MinPads == 0 {
		c.MinPads = 1
	}
	if c.MaxPads == 0 {
		c.MaxPads = 40
	}
	if c.Package == nil {
		c.Package = &Metadata{}
	}
	c.Package.applyDefaults(Metadata{
		Author:   "LibrePCB",
		Version:  "0.1",
		Category: "3fe529fe-b8b1-489b-beae-da54e01c9b20",
	})
}

func (l *LED) applyDefaults() {
	if l.Library == "" {
		l.Library = "LibrePCB_Base.lplib"
	}
	if l.Cache == "" {
		l.Cache = "uuid_cache_led.csv"
	}
	if l.Package == nil {
		l.Package = &Metadata{}
	}
	l.Package.applyDefaults(Metadata{
		Author:   "Danilo B.",
		Version:  "0.1",
		Keywords: "led,tht",
		Category: "9c36c4be-3582-4f27-ae00-4c1229f1e870",
		Created:  "2022-02-26T00:06:03Z",
	})
	if l.Device == nil {
		l.Device = &Metadata{}
	}
	l.Device.applyDefaults(Metadata{
		Author:   "U. Bruhin",
		Version:  "0.1",
		Keywords: "led,tht",
		Category: "70421345-ae1d-4fed-aa60-e7619524b97f",
		Created:  "2022-08-31T11:18:33Z",
	})
	if len(l.Variants) == 0 {
		l.Variants = []LEDVariant{
			{TopDiameter: 3.00, BotDiameter: 3.80, LeadSpacing: 2.54, BodyHeight: 4.5, Standoff: 1.0, BodyColor: "Clear"},
			{TopDiameter: 3.00, BotDiameter: 3.80, LeadSpacing: 2.54, BodyHeight: 4.5, Standoff: 5.0, StandoffInName: true, BodyColor: "Clear"},
			{TopDiameter: 5.00, BotDiameter: 5.80, LeadSpacing: 2.54, BodyHeight: 8.7, Standoff: 1.0, BodyColor: "Clear"},
			{TopDiameter: 5.00, BotDiameter: 5.80, LeadSpacing: 2.54, BodyHeight: 8.7, Standoff: 5.0, StandoffInName: true, BodyColor: "Clear"},
		}
	}
}

func (m *Metadata) applyDefaults(d Metadata) {
	if m.Author == "" {
		m.Author = d.Author
	}
	if m.Version == "" {
		m.Version = d.Version
	}
	if m.Keywords == "" {
		m.Keywords = d.Keywords
	}
	if m.Category == "" {
		m.Category = d.Category
	}
	if m.Created == "" {
		m.Created = d.Created
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "off")),
		validation.Field(&c.Connectors, validation.Required),
		validation.Field(&c.LED, validation.Required),
	)
}

func (c Connectors) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Library, validation.Required),
		validation.Field(&c.Cache, validation.Required),
		validation.Field(&c.MinPads, validation.Min(1)),
		validation.Field(&c.MaxPads, validation.Min(c.MinPads)),
		validation.Field(&c.Package, validation.Required),
	)
}

func (l LED) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Library, validation.Required),
		validation.Field(&l.Cache, validation.Required),
		validation.Field(&l.Package, validation.Required),
		validation.Field(&l.Device, validation.Required),
		validation.Field(&l.Variants),
	)
}

var isUUID = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := ident.ParseUUID(s)
	return err
})

var isDate = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := dateparse.ParseIn(s, time.UTC)
	return err
})

func (m Metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Author, validation.Required),
		validation.Field(&m.Version, validation.Required),
		validation.Field(&m.Category, isUUID),
		validation.Field(&m.Created, isDate),
	)
}

func (v LEDVariant) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.TopDiameter, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&v.BotDiameter, validation.Required, validation.Min(v.TopDiameter)),
		validation.Field(&v.LeadSpacing, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&v.BodyHeight, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&v.Standoff, validation.Min(0.0)),
		validation.Field(&v.BodyColor, validation.Required),
	)
}

// CreatedAt returns the configured creation timestamp, or now truncated to
// seconds when none is configured.
func (m Metadata) CreatedAt(now time.Time) (time.Time, error) {
	if m.Created == "" {
		return now.UTC().Truncate(time.Second), nil
	}
	t, err := dateparse.ParseIn(m.Created, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created timestamp %q: %w", m.Created, err)
	}
	return t.UTC(), nil
}

// CategoryUUID returns the configured category, if any.
func (m Metadata) CategoryUUID() (ident.UUID, bool, error) {
	if m.Category == "" {
		return ident.UUID{}, false, nil
	}
	id, err := ident.ParseUUID(m.Category)
	if err != nil {
		return ident.UUID{}, false, err
	}
	return id, true, nil
}

// CachePath returns the path of a generator cache file. Relative cache
// names are resolved against CacheDir.
func (c *Config) CachePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.CacheDir, name)
}

// LibraryDir returns the output directory of a library.
func (c *Config) LibraryDir(library string) string {
	return filepath.Join(c.OutputDir, library)
}
