package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librepcb/partsgen/internal/cmd/base"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

func newFamily(fs afero.Fs) (familyCommand, *cli.MockUi) {
	ui := cli.NewMockUi()
	return familyCommand{
		Command: base.NewCommand(hclog.NewNullLogger(), ui),
		Fs:      fs,
	}, ui
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "partsgen.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConnectorsCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := writeConfig(t, `
connectors {
  min_pads = 1
  max_pads = 4

  package {
    created = "2018-10-17T19:13:41Z"
  }
}
`)
	args := []string{"-config", cfg, "-output", "/out", "-cache-dir", "/cache"}

	family, ui := newFamily(fs)
	c := &ConnectorsCommand{familyCommand: family}
	require.Equal(t, 0, c.Run(args), ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "connectors: generated 4 elements (4 changed")

	cache, err := uuidcache.Load(fs, "/cache/uuid_cache_connectors.csv")
	require.NoError(t, err)
	pkgID, ok := cache.Lookup("pkg-1x4")
	require.True(t, ok)

	doc, err := afero.ReadFile(fs, "/out/connectors/pkg/"+pkgID.String()+"/package.lp")
	require.NoError(t, err)
	assert.Contains(t, string(doc), `(name "Socket Strip 2.54mm 1x4")`)

	t.Run("check passes when up to date", func(t *testing.T) {
		family, ui := newFamily(fs)
		c := &ConnectorsCommand{familyCommand: family}
		assert.Equal(t, 0, c.Run(append(args, "-check")), ui.ErrorWriter.String())
		assert.Contains(t, ui.OutputWriter.String(), "all 4 elements up to date")
	})

	t.Run("regeneration is stable", func(t *testing.T) {
		family, ui := newFamily(fs)
		c := &ConnectorsCommand{familyCommand: family}
		require.Equal(t, 0, c.Run(args))
		assert.Contains(t, ui.OutputWriter.String(), "(0 changed, 0 new identifiers)")

		again, err := afero.ReadFile(fs, "/out/connectors/pkg/"+pkgID.String()+"/package.lp")
		require.NoError(t, err)
		assert.Equal(t, doc, again)
	})

	t.Run("check reports edited elements without writing", func(t *testing.T) {
		path := "/out/connectors/pkg/" + pkgID.String() + "/package.lp"
		require.NoError(t, afero.WriteFile(fs, path, []byte("edited\n"), 0o644))

		family, ui := newFamily(fs)
		c := &ConnectorsCommand{familyCommand: family}
		assert.Equal(t, 1, c.Run(append(args, "-check")))
		assert.Contains(t, ui.ErrorWriter.String(), "out of date: /out/connectors/pkg/"+pkgID.String())

		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.Equal(t, "edited\n", string(data))
	})

	t.Run("check reports a missing cache", func(t *testing.T) {
		family, ui := newFamily(fs)
		c := &ConnectorsCommand{familyCommand: family}
		assert.Equal(t, 1, c.Run([]string{"-config", cfg, "-output", "/out", "-cache-dir", "/elsewhere", "-check"}))
		assert.Contains(t, ui.ErrorWriter.String(), "missing cache entry: pkg-1x4")

		exists, err := afero.Exists(fs, "/elsewhere/uuid_cache_connectors.csv")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestLEDCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	family, ui := newFamily(fs)
	c := &LEDCommand{familyCommand: family}

	require.Equal(t, 0, c.Run([]string{"-output", "/out", "-cache-dir", "/cache"}), ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "led: generated 8 elements")

	pkgs, err := afero.ReadDir(fs, "/out/LibrePCB_Base.lplib/pkg")
	require.NoError(t, err)
	assert.Len(t, pkgs, 4)

	devs, err := afero.ReadDir(fs, "/out/LibrePCB_Base.lplib/dev")
	require.NoError(t, err)
	require.Len(t, devs, 4)

	marker, err := afero.ReadFile(fs, "/out/LibrePCB_Base.lplib/dev/"+devs[0].Name()+"/.librepcb-dev")
	require.NoError(t, err)
	assert.Equal(t, "1\n", string(marker))
}

func TestFamilyCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope"}, "error parsing flags"},
		{"missing config", []string{"-config", "/nonexistent/partsgen.hcl"}, "error parsing config file"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			family, ui := newFamily(afero.NewMemMapFs())
			c := &ConnectorsCommand{familyCommand: family}
			assert.Equal(t, 1, c.Run(tt.args))
			assert.Contains(t, ui.ErrorWriter.String(), tt.want)
		})
	}
}

func TestCommand_Help(t *testing.T) {
	family, _ := newFamily(nil)
	for _, c := range []cli.Command{
		&ConnectorsCommand{familyCommand: family},
		&LEDCommand{familyCommand: family},
	} {
		assert.Contains(t, c.Help(), "-check")
		assert.NotEmpty(t, c.Synopsis())
	}
	assert.Equal(t, cli.RunResultHelp, (&Command{}).Run(nil))
}
