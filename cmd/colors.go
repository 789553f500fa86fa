package cmd

import (
	"github.com/fatih/color"
)

// Status colors for CLI output only; report text stays plain so reports
// remain byte-deterministic.
var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)
