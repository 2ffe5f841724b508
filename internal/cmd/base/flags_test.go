package base

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSet_Help(t *testing.T) {
	t.Run("no flags", func(t *testing.T) {
		f := NewFlagSet(flag.NewFlagSet("empty", flag.ContinueOnError))
		assert.Empty(t, f.Help())
	})

	t.Run("sorted with defaults", func(t *testing.T) {
		f := NewFlagSet(flag.NewFlagSet("generate", flag.ContinueOnError))
		var check bool
		var output string
		f.StringVar(&output, "output", "out", "Directory libraries are written to.")
		f.BoolVar(&check, "check", false, "Report changes without writing anything. This description is long enough that it has to be wrapped onto a second line.")

		help := f.Help()
		assert.True(t, strings.HasPrefix(help, "\n\nOptions:\n\n  -check\n      Report changes"))
		assert.True(t, strings.HasSuffix(help, "\n\n  -output=out\n      Directory libraries are written to."))
		assert.Less(t, strings.Index(help, "-check"), strings.Index(help, "-output"))
		for _, line := range strings.Split(help, "\n") {
			assert.LessOrEqual(t, len(line), helpWidth+6, line)
		}
	})
}
