package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/ghostmap"
	"github.com/aretw0/ghostmap/internal/logging"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SummaryArgs are the arguments of network_summary.
type SummaryArgs struct {
	Input string `json:"input"`
}

// SummaryResult is the structured output of network_summary.
type SummaryResult struct {
	Nodes        int      `json:"nodes" jsonschema_description:"Number of nodes in the table"`
	Instructions uint64   `json:"instructions" jsonschema_description:"Length of the instruction sequence"`
	Starts       []string `json:"starts" jsonschema_description:"Labels ending in A"`
	Accepting    []string `json:"accepting" jsonschema_description:"Labels ending in Z"`
	Fingerprint  string   `json:"fingerprint" jsonschema_description:"SHA-256 of the puzzle"`
}

// Server exposes the solver as an MCP Server.
type Server struct {
	opts      []ghostmap.Option
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. opts are applied to every
// solver built for a tool call.
func NewServer(logger *slog.Logger, opts ...ghostmap.Option) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		opts:      opts,
		logger:    logger,
		mcpServer: server.NewMCPServer("ghostmap-mcp", ghostmap.Version, server.WithToolCapabilities(false)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: solve_single
	s.mcpServer.AddTool(mcp.NewTool("solve_single",
		mcp.WithDescription("Count the steps a walker needs to get from one node (default AAA) to another (default ZZZ)."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Puzzle text: instruction line, blank line, node table")),
		mcp.WithString("from", mcp.Description("Start label (optional, default AAA)")),
		mcp.WithString("to", mcp.Description("Terminal label (optional, default ZZZ)")),
	), s.handleSolveSingle)

	// TOOL: solve_ghosts
	s.mcpServer.AddTool(mcp.NewTool("solve_ghosts",
		mcp.WithDescription("Walk every node ending in A at once and return the first step where all walkers stand on nodes ending in Z."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Puzzle text: instruction line, blank line, node table")),
		mcp.WithString("strategy",
			mcp.Description("lcm (default) or exact"),
			mcp.Enum(string(ghostmap.StrategyLCM), string(ghostmap.StrategyExact)),
		),
	), s.handleSolveGhosts)

	// TOOL: network_summary
	s.mcpServer.AddTool(mcp.NewTool("network_summary",
		mcp.WithDescription("Describe the network: node count, instruction length, start and accepting nodes."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Puzzle text")),
		mcp.WithOutputSchema[SummaryResult](),
	), mcp.NewStructuredToolHandler(s.handleSummary))
}

func (s *Server) handleSolveSingle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	from, err := labelArg(request, "from", domain.StartLabel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := labelArg(request, "to", domain.EndLabel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	solver, err := ghostmap.FromInput(input, s.opts...)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid puzzle", err), nil
	}
	steps, err := solver.Walk(ctx, from, to)
	if err != nil {
		s.logger.InfoContext(ctx, "solve_single failed", "err", err)
		return mcp.NewToolResultErrorFromErr("walk failed", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprint(steps)), nil
}

func (s *Server) handleSolveGhosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := s.opts
	if strategy := request.GetString("strategy", ""); strategy != "" {
		opts = append(opts[:len(opts):len(opts)], ghostmap.WithStrategy(ghostmap.Strategy(strategy)))
	}

	solver, err := ghostmap.FromInput(input, opts...)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid puzzle", err), nil
	}
	result, err := solver.Ghosts(ctx)
	if err != nil {
		s.logger.InfoContext(ctx, "solve_ghosts failed", "err", err)
		return mcp.NewToolResultErrorFromErr("multi walk failed", err), nil
	}
	return mcp.NewToolResultText(result.String()), nil
}

func (s *Server) handleSummary(ctx context.Context, request mcp.CallToolRequest, args SummaryArgs) (SummaryResult, error) {
	solver, err := ghostmap.FromInput(args.Input, s.opts...)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("invalid puzzle: %w", err)
	}
	sum := solver.Summary()
	return SummaryResult{
		Nodes:        sum.Nodes,
		Instructions: sum.Instructions,
		Starts:       labelStrings(sum.Starts),
		Accepting:    labelStrings(sum.Accepting),
		Fingerprint:  sum.Fingerprint,
	}, nil
}

func labelStrings(labels []domain.Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.String()
	}
	return out
}

func labelArg(request mcp.CallToolRequest, key string, fallback domain.Label) (domain.Label, error) {
	raw := request.GetString(key, "")
	if raw == "" {
		return fallback, nil
	}
	return domain.ParseLabel(raw)
}
