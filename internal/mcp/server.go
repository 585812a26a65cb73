package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(src ProgramSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RollPrep", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RollPrep training planner. Inspect the current program state and weekly triage, generate or advance weeks, apply quick adjustments, and compute load suggestions from readiness and logged sessions."),
	)

	h := &handlers{src: src, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetProgramState, Handler: h.getProgramState},
		server.ServerTool{Tool: toolGetTriage, Handler: h.getTriage},
		server.ServerTool{Tool: toolGenerateWeek, Handler: h.generateWeek},
		server.ServerTool{Tool: toolAdvanceWeek, Handler: h.advanceWeek},
		server.ServerTool{Tool: toolApplyQuickAction, Handler: h.applyQuickAction},
		server.ServerTool{Tool: toolAdjustLoad, Handler: h.adjustLoad},
		server.ServerTool{Tool: toolSuggestStartingLoad, Handler: h.suggestStartingLoad},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCurrentPlan, Handler: h.currentPlan},
		server.ServerResource{Resource: resTriage, Handler: h.triageResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	src ProgramSource
	log *slog.Logger
}

// --- Resource definitions ---

var resCurrentPlan = mcp.NewResource(
	"rollprep://current_plan",
	"Current Plan",
	mcp.WithResourceDescription("The active week's planned sessions, phase, week index, and plan notes"),
	mcp.WithMIMEType("application/json"),
)

var resTriage = mcp.NewResource(
	"rollprep://triage",
	"Weekly Triage",
	mcp.WithResourceDescription("Adherence percentage and red-flagged session logs for the current week"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) currentPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	state, err := h.src.State(ctx)
	if err != nil {
		return nil, err
	}

	plan := map[string]any{
		"phase":     state.Phase,
		"weekIndex": state.WeekIndex,
		"sessions":  state.Sessions,
		"notes":     state.PlanNotes,
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) triageResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summary, err := h.src.Triage(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
