package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the hamcp banner to w. Callers pass stderr when stdout
// carries protocol traffic.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Home Assistant blues
	lines := []struct {
		text  string
		color string
	}{
		{"  _                                ", "#41bdf5"},
		{" | |__   __ _ _ __ ___   ___ _ __  ", "#38a9e0"},
		{" | '_ \\ / _` | '_ ` _ \\ / __| '_ \\ ", "#2f95cb"},
		{" | | | | (_| | | | | | | (__| |_) |", "#2681b6"},
		{" |_| |_|\\__,_|_| |_| |_|\\___| .__/ ", "#1d6da1"},
		{"                             |_|    ", "#14598c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  Home Assistant agent tools over MCP  "+version).Faint())
	fmt.Fprintln(w)
}
