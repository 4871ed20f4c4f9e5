package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/ghostmap/internal/config"
	"github.com/aretw0/ghostmap/internal/logging"
	"github.com/aretw0/ghostmap/internal/presentation/tui"
	"github.com/aretw0/ghostmap/internal/puzzles/day08"
	"github.com/aretw0/ghostmap/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ghostSample = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

const singleSample = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestHarness_Run(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "day08.txt", singleSample)

	reg := registry.NewRegistry()
	reg.Register(day08.New())

	var out bytes.Buffer
	h := &Harness{
		Registry: reg,
		InputDir: dir,
		Printer:  tui.NewPlainPrinter(&out),
		Logger:   logging.NewNop(),
	}

	require.NoError(t, h.Run(context.Background(), nil, 0))
	// AAA is the only ..A node, so part 2 walks it alone.
	assert.Contains(t, out.String(), "Day 08\n → Part 1: 6\n → Part 2: ")

	out.Reset()
	require.NoError(t, h.Run(context.Background(), []int{3}, 0))
	assert.Equal(t, "Day 03\nDay 03 not implemented yet!\n", out.String())
}

func TestHarness_PartFailureIsIsolated(t *testing.T) {
	dir := t.TempDir()
	// AAA reaches ZZZ, but the only other start 11A never accepts.
	writeInput(t, dir, "day08.txt", "L\n\nAAA = (ZZZ, ZZZ)\nZZZ = (ZZZ, ZZZ)\n11A = (11A, 11A)\n")

	reg := registry.NewRegistry()
	reg.Register(day08.New())

	var out bytes.Buffer
	h := &Harness{Registry: reg, InputDir: dir, Printer: tui.NewPlainPrinter(&out), Logger: logging.NewNop()}

	require.NoError(t, h.Run(context.Background(), []int{8}, 0))
	assert.Contains(t, out.String(), " → Part 1: 1\n")
	assert.Contains(t, out.String(), " → Part 2: ")
	assert.Contains(t, out.String(), "periodicity not found")
}

func TestHarness_MissingInput(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(day08.New())

	var out bytes.Buffer
	h := &Harness{Registry: reg, InputDir: t.TempDir(), Printer: tui.NewPlainPrinter(&out), Logger: logging.NewNop()}

	err := h.Run(context.Background(), nil, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 08")
	assert.Equal(t, filepath.Join(h.InputDir, "day08.txt"), h.InputPath(8))
}

func TestSolveFile(t *testing.T) {
	path := writeInput(t, t.TempDir(), "ghosts.txt", ghostSample)

	t.Run("Text", func(t *testing.T) {
		var out bytes.Buffer
		err := SolveFile(context.Background(), SolveOptions{Path: path, Part: 2, Out: &out})
		require.NoError(t, err)
		assert.Equal(t, "Part 2: 6\n", out.String())
	})

	t.Run("Text With Failing Part", func(t *testing.T) {
		var out bytes.Buffer
		err := SolveFile(context.Background(), SolveOptions{Path: path, Out: &out})
		require.Error(t, err)
		assert.Contains(t, out.String(), "Part 1: error: unknown label")
		assert.Contains(t, out.String(), "Part 2: 6")
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		err := SolveFile(context.Background(), SolveOptions{Path: path, Part: 2, Format: FormatJSON, Out: &out})
		require.NoError(t, err)

		var report Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		assert.Equal(t, 8, report.Summary.Nodes)
		assert.Equal(t, []PartResult{{Part: 2, Answer: "6"}}, report.Parts)
	})

	t.Run("Markdown", func(t *testing.T) {
		var out bytes.Buffer
		err := SolveFile(context.Background(), SolveOptions{Path: path, Part: 2, Format: FormatMarkdown, Out: &out})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "| 2 | 6 |")
		assert.Contains(t, out.String(), "| 11A | 2 |")
		assert.Contains(t, out.String(), "| 22A | 6 |")
	})

	t.Run("Bad Part", func(t *testing.T) {
		err := SolveFile(context.Background(), SolveOptions{Path: path, Part: 5, Out: &bytes.Buffer{}})
		assert.Error(t, err)
	})
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, ValidateFile(writeInput(t, dir, "ok.txt", ghostSample), &out, false))
	assert.Contains(t, out.String(), "11A reaches 4 nodes, 1 accepting")
	assert.Contains(t, out.String(), "Network is valid")

	out.Reset()
	err := ValidateFile(writeInput(t, dir, "trap.txt", "L\n\nAAA = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n"), &out, true)
	require.Error(t, err)
	assert.Contains(t, out.String(), `"orphan"`)
}

func TestGraphFile(t *testing.T) {
	path := writeInput(t, t.TempDir(), "single.txt", singleSample)

	var out bytes.Buffer
	require.NoError(t, GraphFile(GraphOptions{Path: path, Walk: "AAA", Steps: 10, Out: &out}))
	assert.Contains(t, out.String(), "graph LR")
	assert.Contains(t, out.String(), "class nZZZ current;")

	err := GraphFile(GraphOptions{Path: path, Walk: "QQQ", Out: &out})
	assert.Error(t, err)
}

func TestNewStack(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		cfg := config.Default()
		stack, err := NewStack(ctx, cfg, logging.NewNop(), true)
		require.NoError(t, err)
		defer stack.Close()
		assert.NotNil(t, stack.Cache)
		assert.NotEmpty(t, stack.Options)
	})

	t.Run("None", func(t *testing.T) {
		cfg := config.Default()
		cfg.Cache.Backend = config.BackendNone
		stack, err := NewStack(ctx, cfg, logging.NewNop(), false)
		require.NoError(t, err)
		assert.Nil(t, stack.Cache)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.Default()
		cfg.Cache.Backend = config.BackendRedis
		cfg.Cache.Addr = mr.Addr()

		stack, err := NewStack(ctx, cfg, logging.NewNop(), false)
		require.NoError(t, err)
		defer stack.Close()

		path := writeInput(t, t.TempDir(), "ghosts.txt", ghostSample)
		require.NoError(t, SolveFile(ctx, SolveOptions{Path: path, Part: 2, Out: &bytes.Buffer{}, Options: stack.Options}))
		assert.NotEmpty(t, mr.Keys())
	})
}
