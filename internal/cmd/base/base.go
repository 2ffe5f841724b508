// Package base holds what every partsgen command shares.
package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// NewCommand returns a base command writing to ui and logging to log.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
	}
}
