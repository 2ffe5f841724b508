// Package uuidcache maps stable semantic keys to entity identifiers, so that
// regenerating a library element reuses the UUIDs of the previous run.
//
// The cache is persisted as CSV lines of the form "key,uuid", sorted by key.
// Backslashes and line breaks in keys are escaped as \\, \n and \r.
package uuidcache

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/library"
)

// Cache is an identity cache. It is not safe for concurrent use.
type Cache struct {
	fs     afero.Fs
	path   string
	logger hclog.Logger

	entries map[string]ident.UUID
	added   map[string]struct{}
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report minted identifiers.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New returns an empty in-memory cache. Save fails on a cache created this
// way; use Load to bind a cache to a file.
func New(opts ...Option) *Cache {
	c := &Cache{
		logger:  hclog.NewNullLogger(),
		entries: make(map[string]ident.UUID),
		added:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the cache file at path. A missing file yields an empty cache
// that will be created on Save.
//
// Every malformed line and duplicate key is reported in one ErrCorrupt error.
func Load(fs afero.Fs, path string, opts ...Option) (*Cache, error) {
	c := New(opts...)
	c.fs = fs
	c.path = path

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger.Debug("cache file does not exist, starting empty", "path", path)
			return c, nil
		}
		return nil, &Error{Op: "load", Path: path, Kind: ErrIO, Err: err}
	}

	if err := c.parse(data); err != nil {
		return nil, &Error{Op: "load", Path: path, Kind: ErrCorrupt, Err: err}
	}
	c.logger.Debug("loaded cache", "path", path, "entries", len(c.entries))
	return c, nil
}

func (c *Cache) parse(data []byte) error {
	var result *multierror.Error

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, id, err := parseLine(line)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		if id.IsZero() {
			result = multierror.Append(result, fmt.Errorf("line %d: nil UUID for key %q", lineNo, key))
			continue
		}
		if _, dup := c.entries[key]; dup {
			result = multierror.Append(result, fmt.Errorf("line %d: duplicate key %q", lineNo, key))
			continue
		}
		c.entries[key] = id
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Resolve returns the identifier stored for key, minting and storing a new
// random one on a miss. Distinct keys never share an identifier.
func (c *Cache) Resolve(key string) ident.UUID {
	if id, ok := c.entries[key]; ok {
		return id
	}
	id := ident.NewUUID()
	c.entries[key] = id
	c.added[key] = struct{}{}
	c.logger.Debug("minted identifier", "key", key, "uuid", id)
	return id
}

// Lookup returns the identifier stored for key without minting one.
func (c *Cache) Lookup(key string) (ident.UUID, bool) {
	id, ok := c.entries[key]
	return id, ok
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Keys returns all keys in sorted order.
func (c *Cache) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Added returns the keys minted since the cache was created or loaded, in
// sorted order.
func (c *Cache) Added() []string {
	keys := make([]string, 0, len(c.added))
	for k := range c.added {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the file the cache was loaded from, or "" for an in-memory
// cache.
func (c *Cache) Path() string {
	return c.path
}

// Bytes returns the persisted form of the cache.
func (c *Cache) Bytes() []byte {
	var b bytes.Buffer
	for _, k := range c.Keys() {
		b.WriteString(FormatLine(k, c.entries[k]))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Save writes the full cache back to the file it was loaded from. The data
// is written to a temporary file first and renamed over the target, so a
// failed save leaves the previous file intact.
func (c *Cache) Save() error {
	if c.fs == nil {
		return &Error{Op: "save", Kind: ErrIO, Err: fmt.Errorf("cache is not bound to a file")}
	}

	if err := library.WriteFileAtomic(c.fs, c.path, c.Bytes()); err != nil {
		return &Error{Op: "save", Path: c.path, Kind: ErrIO, Err: err}
	}
	c.logger.Info("saved cache", "path", c.path, "entries", len(c.entries), "added", len(c.added))
	return nil
}
