package mcp

import (
	"context"

	"github.com/claude/rollprep/internal/engine"
	"github.com/claude/rollprep/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetProgramState = mcp.NewTool("get_program_state",
	mcp.WithDescription("Retrieve the full program state: profile, phase, week index, active sessions, session logs, and the current readiness snapshot."),
)

var toolGetTriage = mcp.NewTool("get_triage",
	mcp.WithDescription("Weekly triage for the current week: adherence percentage and red-flagged logs (missed sessions, pain, very high effort)."),
)

var toolGenerateWeek = mcp.NewTool("generate_week",
	mcp.WithDescription("Generate a fresh weekly plan from the profile, readiness, last week's logs, and the current phase. Fully replaces the active session list."),
)

var toolAdvanceWeek = mcp.NewTool("advance_week",
	mcp.WithDescription("Advance the periodization state machine by one week. Clears the session list; every fourth week is forced into Deload."),
)

var toolApplyQuickAction = mcp.NewTool("apply_quick_action",
	mcp.WithDescription("Apply a discrete plan adjustment. Repeated cap_sets/swap_press calls compound."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("Adjustment to apply"), mcp.Enum("deload", "cap_sets", "swap_press")),
)

var toolAdjustLoad = mcp.NewTool("adjust_load",
	mcp.WithDescription("Compute the next working load from a previous load, readiness inputs, and a pain flag. Rules are additive: pain -7%, full recovery +3%, high soreness -2%, high stress -1%."),
	mcp.WithNumber("previous_load", mcp.Required(), mcp.Description("Previous working load")),
	mcp.WithNumber("sleep", mcp.Required(), mcp.Description("Sleep quality 1-10")),
	mcp.WithNumber("soreness", mcp.Required(), mcp.Description("Soreness 1-5")),
	mcp.WithNumber("stress", mcp.Required(), mcp.Description("Stress 1-5")),
	mcp.WithBoolean("pain", mcp.Description("Whether pain is present. Defaults to false.")),
)

var toolSuggestStartingLoad = mcp.NewTool("suggest_starting_load",
	mcp.WithDescription("Suggest a starting working load for a movement from last week's logs (2% linear progression on the matched prior load). Returns no suggestion when there is nothing to anchor on."),
	mcp.WithString("movement", mcp.Required(), mcp.Description("Movement name, e.g. 'Back Squat'")),
)

// --- Tool handlers ---

func (h *handlers) getProgramState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.src.State(ctx)
	if err != nil {
		h.log.Error("mcp get_program_state", "error", err)
		return mcp.NewToolResultError("load failed: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(state)
}

func (h *handlers) getTriage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := h.src.Triage(ctx)
	if err != nil {
		h.log.Error("mcp get_triage", "error", err)
		return mcp.NewToolResultError("triage failed: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(summary)
}

func (h *handlers) generateWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.src.GenerateWeek(ctx)
	if err != nil {
		h.log.Error("mcp generate_week", "error", err)
		return mcp.NewToolResultError("generation failed, current week unchanged: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(state)
}

func (h *handlers) advanceWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.src.AdvanceWeek(ctx)
	if err != nil {
		h.log.Error("mcp advance_week", "error", err)
		return mcp.NewToolResultError("advance failed: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(state)
}

func (h *handlers) applyQuickAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind parameter is required"), nil
	}

	state, err := h.src.ApplyQuickAction(ctx, engine.QuickAction(kind))
	if err != nil {
		h.log.Error("mcp apply_quick_action", "error", err)
		return mcp.NewToolResultError("action failed: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(state)
}

func (h *handlers) adjustLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	previous, err := req.RequireFloat("previous_load")
	if err != nil {
		return mcp.NewToolResultError("previous_load parameter is required"), nil
	}
	sleep, err := req.RequireFloat("sleep")
	if err != nil {
		return mcp.NewToolResultError("sleep parameter is required"), nil
	}
	soreness, err := req.RequireFloat("soreness")
	if err != nil {
		return mcp.NewToolResultError("soreness parameter is required"), nil
	}
	stress, err := req.RequireFloat("stress")
	if err != nil {
		return mcp.NewToolResultError("stress parameter is required"), nil
	}
	pain := req.GetBool("pain", false)

	readiness := models.Readiness{Sleep: int(sleep), Soreness: int(soreness), Stress: int(stress)}
	next := engine.AdjustLoad(previous, readiness, pain)

	return mcp.NewToolResultJSON(map[string]float64{"load": next})
}

func (h *handlers) suggestStartingLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	movement, err := req.RequireString("movement")
	if err != nil {
		return mcp.NewToolResultError("movement parameter is required"), nil
	}

	load, err := h.src.SuggestLoad(ctx, movement)
	if err != nil {
		h.log.Error("mcp suggest_starting_load", "error", err)
		return mcp.NewToolResultError("suggestion failed: " + err.Error()), nil
	}
	if load == nil {
		return mcp.NewToolResultJSON(map[string]any{"load": nil, "reason": "no usable prior-week log for this movement"})
	}
	return mcp.NewToolResultJSON(map[string]any{"load": *load})
}
