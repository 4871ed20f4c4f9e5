package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Printer writes harness output, coloured when the profile allows it.
type Printer struct {
	w       io.Writer
	profile termenv.Profile
}

// NewPrinter detects the colour profile of stdout.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, profile: termenv.ColorProfile()}
}

// NewPlainPrinter never emits escape sequences.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w, profile: termenv.Ascii}
}

// Day prints the underlined "Day NN" header.
func (p *Printer) Day(day int) {
	number := p.profile.String(fmt.Sprintf("%02d", day)).Bold()
	header := p.profile.String("Day " + number.String()).Underline().Foreground(p.profile.Color("#a78bfa"))
	fmt.Fprintln(p.w, header)
}

// Answer prints one " → Part N: answer" line with a green part label.
func (p *Printer) Answer(part int, answer string) {
	p.part(part, "#4ade80", answer)
}

// Failure prints a failed part with a red label without aborting the run.
func (p *Printer) Failure(part int, err error) {
	p.part(part, "#f87171", err.Error())
}

// Missing reports a day with no registered puzzle.
func (p *Printer) Missing(day int) {
	fmt.Fprintf(p.w, "Day %02d not implemented yet!\n", day)
}

func (p *Printer) part(part int, color, msg string) {
	label := p.profile.String(fmt.Sprintf("Part %d", part)).Foreground(p.profile.Color(color))
	fmt.Fprintf(p.w, " → %s: %s\n", label, msg)
}
