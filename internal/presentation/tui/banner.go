package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ghostmap banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Teal to indigo, one colour per row
	rows := []struct{ text, color string }{
		{"         _               _                         ", "#2dd4bf"},
		{"    __ _| |__   ___  ___| |_ _ __ ___   __ _ _ __  ", "#22d3ee"},
		{"   / _` | '_ \\ / _ \\/ __| __| '_ ` _ \\ / _` | '_ \\ ", "#38bdf8"},
		{"  | (_| | | | | (_) \\__ \\ |_| | | | | | (_| | |_) |", "#60a5fa"},
		{"   \\__, |_| |_|\\___/|___/\\__|_| |_| |_|\\__,_| .__/ ", "#818cf8"},
		{"   |___/                                    |_|    ", "#a78bfa"},
	}

	fmt.Fprintln(w)
	for _, r := range rows {
		fmt.Fprintln(w, termenv.String(r.text).Foreground(p.Color(r.color)))
	}
	fmt.Fprintln(w)
}
