// Package utils provides shared utility functions for the TUI.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RuneWidth returns the terminal cell width of a single rune.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// TruncateString truncates a string to a given cell width and adds an
// ellipsis if truncated. It handles wide characters correctly using
// runewidth.
func TruncateString(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

// PadToWidth pads or truncates s to exactly width terminal cells.
func PadToWidth(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return TruncateString(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// WrapString wraps s to lines no wider than width cells, breaking on
// spaces where possible.
func WrapString(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	// Hard-break anything still wider than the limit.
	var out []string
	for _, line := range lines {
		for runewidth.StringWidth(line) > width {
			out = append(out, runewidth.Truncate(line, width, ""))
			line = line[len(runewidth.Truncate(line, width, "")):]
		}
		out = append(out, line)
	}
	return out
}
