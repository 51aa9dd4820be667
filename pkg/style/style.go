// Package style centralizes the terminal color formatters the utilities
// share, plus the policy for when color is allowed at all.
package style

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Set holds the color formatters used across the tools.
type Set struct {
	Match   *color.Color // grep: the matching portion of a line
	File    *color.Color // grep: file name prefixes
	LineNum *color.Color // grep: line number prefixes
	Today   *color.Color // cal: the current day
	Dir     *color.Color // ls: directory entries
}

// New builds the color set. With enabled=false every formatter passes text
// through unchanged, which keeps the call sites free of conditionals.
func New(enabled bool) *Set {
	s := &Set{
		Match:   color.New(color.Bold, color.FgRed),
		File:    color.New(color.FgMagenta),
		LineNum: color.New(color.FgGreen),
		Today:   color.New(color.ReverseVideo),
		Dir:     color.New(color.Bold, color.FgBlue),
	}

	if !enabled {
		s.Match.DisableColor()
		s.File.DisableColor()
		s.LineNum.DisableColor()
		s.Today.DisableColor()
		s.Dir.DisableColor()
	}

	return s
}

// Enabled reports whether color output should be used for the given mode
// ("auto", "always", or "never"). In auto mode color requires stdout to be
// a terminal and respects the NO_COLOR convention.
func Enabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}
