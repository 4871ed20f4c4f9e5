package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Day(8)
	p.Answer(1, "21409")
	p.Failure(2, errors.New("step budget exceeded"))

	assert.Equal(t, "Day 08\n → Part 1: 21409\n → Part 2: step budget exceeded\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
}

func TestRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Day 08\n\n| Part | Answer |\n|---|---|\n| 1 | 6 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 08")
	assert.Contains(t, out, "Answer")
}
