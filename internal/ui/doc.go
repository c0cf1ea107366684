// Package ui decorates terminal output. A Palette maps a semantic Tag to a
// lipgloss style bound to one renderer, so the same call produces colored
// output on a terminal and plain text when piped or when color is disabled.
package ui
