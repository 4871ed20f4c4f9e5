package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
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

func call(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestSolveSingle(t *testing.T) {
	s := NewServer(nil)
	ctx := context.Background()

	res, err := s.handleSolveSingle(ctx, call("solve_single", map[string]any{
		"input": "LLR\n\nAAA = (BBB, BBB)\nBBB = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)\n",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "6", text(t, res))

	res, err = s.handleSolveSingle(ctx, call("solve_single", map[string]any{
		"input": ghostSample,
		"from":  "11A",
		"to":    "11Z",
	}))
	require.NoError(t, err)
	assert.Equal(t, "2", text(t, res))
}

func TestSolveSingle_Errors(t *testing.T) {
	s := NewServer(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"Missing Input", map[string]any{}, "input"},
		{"Bad Label", map[string]any{"input": ghostSample, "from": "a"}, "invalid label"},
		{"Bad Puzzle", map[string]any{"input": "LR\n\nAAA = (BBB, BBB)\n"}, "invalid puzzle"},
		{"No Terminal", map[string]any{"input": "L\n\nAAA = (AAA, AAA)\n"}, "walk failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleSolveSingle(ctx, call("solve_single", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), tt.want)
		})
	}
}

func TestSolveGhosts(t *testing.T) {
	s := NewServer(nil)
	for _, strategy := range []string{"", "lcm", "exact"} {
		res, err := s.handleSolveGhosts(context.Background(), call("solve_ghosts", map[string]any{
			"input":    ghostSample,
			"strategy": strategy,
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError, strategy)
		assert.Equal(t, "6", text(t, res), strategy)
	}

	res, err := s.handleSolveGhosts(context.Background(), call("solve_ghosts", map[string]any{
		"input":    ghostSample,
		"strategy": "guess",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestNetworkSummary(t *testing.T) {
	s := NewServer(nil)

	got, err := s.handleSummary(context.Background(), mcp.CallToolRequest{}, SummaryArgs{Input: ghostSample})
	require.NoError(t, err)
	assert.Equal(t, 8, got.Nodes)
	assert.Equal(t, uint64(2), got.Instructions)
	assert.Equal(t, []string{"11A", "22A"}, got.Starts)
	assert.Equal(t, []string{"11Z", "22Z"}, got.Accepting)

	_, err = s.handleSummary(context.Background(), mcp.CallToolRequest{}, SummaryArgs{Input: "??"})
	assert.Error(t, err)
}
