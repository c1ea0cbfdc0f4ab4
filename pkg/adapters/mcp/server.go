package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/locale"
	"github.com/aretw0/agrocalc/pkg/report"
	"github.com/aretw0/agrocalc/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

// CatalogURI is the resource exposing the module catalog.
const CatalogURI = "agrocalc://catalog"

// Engine is the slice of the calculator engine the MCP server needs.
type Engine interface {
	Modules() []domain.ModuleDescriptor
	Module(id string) (*calc.Module, error)
	Compute(ctx context.Context, moduleID string, strategy domain.StrategyID, raw domain.RawInputSet) (domain.ResultSequence, error)
	Report(ctx context.Context, moduleID string, strategy domain.StrategyID, raw domain.RawInputSet) (*report.Report, error)
}

// ComputeArgs are the arguments of the compute and report tools.
type ComputeArgs struct {
	Module   string            `json:"module"`
	Strategy string            `json:"strategy,omitempty"`
	Inputs   map[string]string `json:"inputs,omitempty"`
}

// ComputeResponse is the structured output of the compute tool.
type ComputeResponse struct {
	Module   string            `json:"module" jsonschema_description:"Module identifier"`
	Strategy domain.StrategyID `json:"strategy" jsonschema_description:"Strategy that ran"`
	Outcome  domain.ResultKind `json:"outcome" jsonschema_description:"value, info, error or unsatisfiable"`
	Results  []ResultEntry     `json:"results" jsonschema_description:"Ordered results, primary first"`
}

// ResultEntry is one result with its pt-BR display text.
type ResultEntry struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Kind  string `json:"kind"`
}

// Server wraps the calculator engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, version string, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("agrocalc-mcp", version),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over SSE on the given port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())
	httpServer := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_modules",
		mcp.WithDescription("List the agronomic calculators in catalog order."),
	), s.handleListModules)

	s.mcpServer.AddTool(mcp.NewTool("describe_module",
		mcp.WithDescription("Describe a calculator: its strategies, fields, units, defaults and formula."),
		mcp.WithString("module", mcp.Required(), mcp.Description("Module identifier, e.g. LIMING_REQUIREMENT")),
	), s.handleDescribeModule)

	s.mcpServer.AddTool(mcp.NewTool("compute",
		mcp.WithDescription("Run a calculator. Inputs are raw text as typed in a form; omitted fields take their defaults."),
		mcp.WithString("module", mcp.Required(), mcp.Description("Module identifier")),
		mcp.WithString("strategy", mcp.Description("Strategy identifier; empty selects the default")),
		mcp.WithObject("inputs", mcp.Description("Map of field name to raw text value")),
		mcp.WithOutputSchema[ComputeResponse](),
	), mcp.NewStructuredToolHandler(s.handleCompute))

	s.mcpServer.AddTool(mcp.NewTool("report",
		mcp.WithDescription("Run a calculator and return a Markdown report in pt-BR."),
		mcp.WithString("module", mcp.Required(), mcp.Description("Module identifier")),
		mcp.WithString("strategy", mcp.Description("Strategy identifier; empty selects the default")),
		mcp.WithObject("inputs", mcp.Description("Map of field name to raw text value")),
	), s.handleReport)
}

func (s *Server) handleListModules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(s.engine.Modules())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleDescribeModule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("module")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.engine.Module(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode module: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleCompute(ctx context.Context, request mcp.CallToolRequest, args ComputeArgs) (ComputeResponse, error) {
	raw, err := sanitize(args.Inputs)
	if err != nil {
		s.logger.Warn("MCP compute: input rejected", "error", err)
		return ComputeResponse{}, err
	}
	m, err := s.engine.Module(args.Module)
	if err != nil {
		return ComputeResponse{}, err
	}
	st, err := m.Strategy(domain.StrategyID(args.Strategy))
	if err != nil {
		return ComputeResponse{}, err
	}
	seq, err := s.engine.Compute(ctx, m.ID, st.ID, raw)
	if err != nil {
		return ComputeResponse{}, fmt.Errorf("compute failed: %w", err)
	}

	entries := make([]ResultEntry, len(seq))
	for i, r := range seq {
		entries[i] = ResultEntry{Label: r.Label, Text: locale.FormatValue(r.Value, r.Unit), Kind: string(r.Kind)}
	}
	return ComputeResponse{
		Module:   m.ID,
		Strategy: st.ID,
		Outcome:  domain.Outcome(seq),
		Results:  entries,
	}, nil
}

func (s *Server) handleReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args ComputeArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	raw, err := sanitize(args.Inputs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rep, err := s.engine.Report(ctx, args.Module, domain.StrategyID(args.Strategy), raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(report.Markdown(rep)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Calculator catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(s.engine.Modules())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func sanitize(in map[string]string) (domain.RawInputSet, error) {
	raw := make(domain.RawInputSet, len(in))
	for k, v := range in {
		clean, err := runner.SanitizeInput(v)
		if err != nil {
			return nil, fmt.Errorf("input %q rejected: %w", k, err)
		}
		raw[k] = clean
	}
	return raw, nil
}
