package cache

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librepcb/partsgen/internal/cmd/base"
)

const (
	goodCache = "pkg-1x2,00c8d2b4-3e64-4f5e-bb0e-35ec2c8c7fb2\n" +
		"pad-1x2-0,f4bc3ec8-8acb-4f8b-a45a-a8e7e5c6a4c9\n" +
		"pkg-1x1,6b7f0c4e-5a37-4d8e-9a10-2f1e3d4c5b6a\n"
	badCache = "pkg-1x1,6b7f0c4e-5a37-4d8e-9a10-2f1e3d4c5b6a\n" +
		"pkg-1x1,00c8d2b4-3e64-4f5e-bb0e-35ec2c8c7fb2\n" +
		"garbage\n"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/good.csv", []byte(goodCache), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/bad.csv", []byte(badCache), 0o644))
	return fs
}

func TestListCommand(t *testing.T) {
	t.Run("prints sorted entries", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := &ListCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui), Fs: testFs(t)}

		require.Equal(t, 0, c.Run([]string{"/good.csv"}), ui.ErrorWriter.String())
		assert.Equal(t, "pad-1x2-0,f4bc3ec8-8acb-4f8b-a45a-a8e7e5c6a4c9\n"+
			"pkg-1x1,6b7f0c4e-5a37-4d8e-9a10-2f1e3d4c5b6a\n"+
			"pkg-1x2,00c8d2b4-3e64-4f5e-bb0e-35ec2c8c7fb2\n", ui.OutputWriter.String())
	})

	t.Run("prefix filter", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := &ListCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui), Fs: testFs(t)}

		require.Equal(t, 0, c.Run([]string{"-prefix", "pkg-", "/good.csv"}))
		assert.NotContains(t, ui.OutputWriter.String(), "pad-1x2-0")
		assert.Contains(t, ui.OutputWriter.String(), "pkg-1x1,")
	})

	t.Run("errors", func(t *testing.T) {
		for _, args := range [][]string{{}, {"/missing.csv"}, {"/bad.csv"}} {
			ui := cli.NewMockUi()
			c := &ListCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui), Fs: testFs(t)}
			assert.Equal(t, 1, c.Run(args), args)
			assert.NotEmpty(t, ui.ErrorWriter.String())
		}
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := &CheckCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui), Fs: testFs(t)}

		assert.Equal(t, 0, c.Run([]string{"/good.csv"}))
		assert.Contains(t, ui.OutputWriter.String(), "/good.csv: ok, 3 entries")
	})

	t.Run("reports every problem", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := &CheckCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui), Fs: testFs(t)}

		assert.Equal(t, 1, c.Run([]string{"/good.csv", "/bad.csv", "/missing.csv"}))
		errs := ui.ErrorWriter.String()
		assert.Contains(t, errs, "corrupt identity cache")
		assert.Contains(t, errs, `line 2: duplicate key "pkg-1x1"`)
		assert.Contains(t, errs, "line 3")
		assert.Contains(t, errs, "/missing.csv: file not found")
		assert.Contains(t, ui.OutputWriter.String(), "/good.csv: ok")
	})

	t.Run("no arguments", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := &CheckCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui), Fs: testFs(t)}
		assert.Equal(t, 1, c.Run(nil))
	})
}
