package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds the color formatters used by build and check output.
type styles struct {
	ok      *color.Color
	fail    *color.Color
	skipped *color.Color
	path    *color.Color
	detail  *color.Color
}

// newStyles creates color formatters.
// enabled=false respects --color never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		ok:      color.New(color.FgHiGreen),
		fail:    color.New(color.Bold, color.FgHiRed),
		skipped: color.New(color.FgHiBlack),
		path:    color.New(color.Bold, color.FgHiWhite),
		detail:  color.New(color.FgYellow),
	}

	if !enabled {
		s.ok.DisableColor()
		s.fail.DisableColor()
		s.skipped.DisableColor()
		s.path.DisableColor()
		s.detail.DisableColor()
	}

	return s
}

// colorEnabled resolves the --color auto|always|never flag.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			return false
		}
		return true
	}
}
