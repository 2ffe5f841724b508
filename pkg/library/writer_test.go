package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librepcb/partsgen/pkg/entity"
	"github.com/librepcb/partsgen/pkg/ident"
)

const root = "/out/LibrePCB_Base.lplib"

func testPackage(t *testing.T, name entity.Name) *entity.Package {
	t.Helper()
	pkg, err := entity.NewPackage(
		ident.MustParseUUID("a7b1b8a4-0f7c-4a86-9d4e-1a2b3c4d5e6f"),
		entity.Metadata{
			Name:    name,
			Version: "0.1",
			Created: entity.Created(time.Date(2022, 2, 26, 0, 6, 3, 0, time.UTC)),
		},
		entity.AssemblyTypeTHT,
	)
	require.NoError(t, err)
	return pkg
}

func TestWriter_Write(t *testing.T) {
	t.Run("creates element directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		w := NewWriter(fs, root, nil)
		pkg := testPackage(t, "Socket Strip 2.54mm 1x4")

		res, err := w.Write(pkg)
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Equal(t, entity.KindPackage, res.Kind)

		dir := "/out/LibrePCB_Base.lplib/pkg/a7b1b8a4-0f7c-4a86-9d4e-1a2b3c4d5e6f"
		assert.Equal(t, dir, res.Dir)

		marker, err := afero.ReadFile(fs, dir+"/.librepcb-pkg")
		require.NoError(t, err)
		assert.Equal(t, "1\n", string(marker))

		doc, err := afero.ReadFile(fs, dir+"/package.lp")
		require.NoError(t, err)
		assert.Equal(t, entity.Serialize(pkg), doc)

		entries, err := afero.ReadDir(fs, dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("identical rewrite reports no change", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		w := NewWriter(fs, root, nil)

		_, err := w.Write(testPackage(t, "A"))
		require.NoError(t, err)

		res, err := w.Write(testPackage(t, "A"))
		require.NoError(t, err)
		assert.False(t, res.Changed)

		res, err = w.Write(testPackage(t, "B"))
		require.NoError(t, err)
		assert.True(t, res.Changed)
	})

	t.Run("read-only filesystem", func(t *testing.T) {
		w := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()), root, nil)
		_, err := w.Write(testPackage(t, "A"))
		assert.True(t, errors.Is(err, ErrIO))
	})

	t.Run("failed document write leaves no marker", func(t *testing.T) {
		fs := failRenameFs{Fs: afero.NewMemMapFs(), name: "package.lp"}
		w := NewWriter(fs, root, nil)
		pkg := testPackage(t, "A")

		_, err := w.Write(pkg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIO))

		exists, err := afero.Exists(fs, w.Dir(pkg)+"/.librepcb-pkg")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("copy-on-write layer keeps base untouched", func(t *testing.T) {
		base := afero.NewMemMapFs()
		_, err := NewWriter(base, root, nil).Write(testPackage(t, "A"))
		require.NoError(t, err)

		layer := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs())
		res, err := NewWriter(layer, root, nil).Write(testPackage(t, "B"))
		require.NoError(t, err)
		assert.True(t, res.Changed)

		doc, err := afero.ReadFile(base, res.Dir+"/package.lp")
		require.NoError(t, err)
		assert.Contains(t, string(doc), `(name "A")`)
	})
}

func TestWriteFileAtomic(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFileAtomic(fs, "/a/b/c.txt", []byte("one")))
	require.NoError(t, WriteFileAtomic(fs, "/a/b/c.txt", []byte("two")))

	data, err := afero.ReadFile(fs, "/a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := afero.ReadDir(fs, "/a/b")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_Mode(t *testing.T) {
	fs := afero.NewOsFs()
	dir := t.TempDir()

	t.Run("new file is world readable", func(t *testing.T) {
		path := filepath.Join(dir, "lib", "package.lp")
		require.NoError(t, WriteFileAtomic(fs, path, []byte("(librepcb_package)\n")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("existing file keeps its mode", func(t *testing.T) {
		path := filepath.Join(dir, "uuid_cache_led.csv")
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))
		require.NoError(t, os.Chmod(path, 0o640))
		require.NoError(t, WriteFileAtomic(fs, path, []byte("new\n")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(data))
	})
}

// failRenameFs fails every rename onto a file with the given base name.
type failRenameFs struct {
	afero.Fs
	name string
}

func (f failRenameFs) Rename(oldname, newname string) error {
	if filepath.Base(newname) == f.name {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: os.ErrPermission}
	}
	return f.Fs.Rename(oldname, newname)
}
