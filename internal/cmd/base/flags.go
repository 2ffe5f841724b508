package base

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// helpWidth is the column at which flag descriptions are wrapped.
const helpWidth = 72

// FlagSet wraps a flag.FlagSet and renders its flags for command help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the "Options:" section of a command help text.
func (f *FlagSet) Help() string {
	var flags []*flag.Flag
	f.VisitAll(func(fl *flag.Flag) {
		flags = append(flags, fl)
	})
	if len(flags) == 0 {
		return ""
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].Name < flags[j].Name })

	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	for _, fl := range flags {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		b.WriteString("\n")
		usage := wordwrap.WrapString(fl.Usage, helpWidth)
		for _, line := range strings.Split(usage, "\n") {
			fmt.Fprintf(&b, "      %s\n", line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
