// Package library writes library elements into the directory layout of a
// LibrePCB library:
//
//	<root>/<pkg|dev>/<uuid>/.librepcb-<pkg|dev>
//	<root>/<pkg|dev>/<uuid>/<package|device>.lp
package library

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/librepcb/partsgen/pkg/entity"
)

// FormatVersion is the content of the version marker file.
const FormatVersion = "1\n"

// ErrIO is returned when an element cannot be written.
var ErrIO = errors.New("library i/o failure")

// Result describes one written element.
type Result struct {
	Kind    entity.Kind
	Dir     string
	Changed bool // False when the directory already held identical files
}

// Writer writes element documents below a library root directory.
type Writer struct {
	fs     afero.Fs
	root   string
	logger hclog.Logger
}

// NewWriter returns a writer for the library at root.
func NewWriter(fs afero.Fs, root string, logger hclog.Logger) *Writer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Writer{fs: fs, root: root, logger: logger}
}

// Dir returns the element directory of doc.
func (w *Writer) Dir(doc entity.Document) string {
	return filepath.Join(w.root, string(doc.Kind()), doc.UUID().String())
}

// Write serializes doc and stores it with its version marker. The document
// is written before the marker, so a directory holding a marker always holds
// a complete document. Files whose content is already up to date are left
// untouched.
func (w *Writer) Write(doc entity.Document) (Result, error) {
	kind := doc.Kind()
	dir := w.Dir(doc)
	res := Result{Kind: kind, Dir: dir}

	files := []struct {
		name string
		data []byte
	}{
		{kind.FileName(), entity.Serialize(doc)},
		{kind.MarkerName(), []byte(FormatVersion)},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		same, err := w.unchanged(path, f.data)
		if err != nil {
			return res, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
		}
		if same {
			continue
		}
		if err := WriteFileAtomic(w.fs, path, f.data); err != nil {
			return res, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
		}
		res.Changed = true
	}

	if res.Changed {
		w.logger.Info("wrote element", "kind", kind, "uuid", doc.UUID(), "dir", dir)
	} else {
		w.logger.Debug("element unchanged", "kind", kind, "uuid", doc.UUID())
	}
	return res, nil
}

func (w *Writer) unchanged(path string, data []byte) (bool, error) {
	existing, err := afero.ReadFile(w.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(existing, data), nil
}

// FileMode is the permission of newly written files.
const FileMode os.FileMode = 0o644

// WriteFileAtomic writes data to a temporary file next to path and renames
// it over path. Missing parent directories are created. An existing file
// keeps its permissions; a new one gets FileMode.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	mode := FileMode
	if info, err := fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmp.Name())
		return err
	}
	// Temporary files are created owner-only.
	if err := fs.Chmod(tmp.Name(), mode); err != nil {
		fs.Remove(tmp.Name())
		return err
	}
	if err := fs.Rename(tmp.Name(), path); err != nil {
		fs.Remove(tmp.Name())
		return err
	}
	return nil
}
