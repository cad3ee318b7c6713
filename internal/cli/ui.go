// SPDX-License-Identifier: MIT

package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
)

// Batch status column. Width pads inside the style so escape codes never
// reach the tabwriter.
var (
	styleSolved = lipgloss.NewStyle().Foreground(colorGreen).Width(12)
	styleCached = lipgloss.NewStyle().Foreground(colorCyan).Width(12)
	styleFailed = lipgloss.NewStyle().Foreground(colorRed).Width(12)
)
