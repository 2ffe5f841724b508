package uuidcache

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrupt is returned when a cache file holds malformed lines or
	// duplicate keys.
	ErrCorrupt = errors.New("corrupt identity cache")

	// ErrIO is returned when the cache file cannot be read or written.
	ErrIO = errors.New("identity cache i/o failure")
)

// Error wraps a cache failure with the operation and file it occurred on.
type Error struct {
	Op   string // Operation (e.g., "load", "save")
	Path string // Cache file path
	Kind error  // ErrCorrupt or ErrIO
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the sentinel kind and the underlying error.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
