package mcp

import (
	"context"

	"github.com/claude/rollprep/internal/engine"
	"github.com/claude/rollprep/internal/models"
	"github.com/claude/rollprep/internal/program"
)

// ProgramSource abstracts the program service for MCP tools, keeping the tool
// layer testable with a fake.
type ProgramSource interface {
	State(ctx context.Context) (*models.ProgramState, error)
	Triage(ctx context.Context) (*engine.Summary, error)
	GenerateWeek(ctx context.Context) (*models.ProgramState, error)
	AdvanceWeek(ctx context.Context) (*models.ProgramState, error)
	ApplyQuickAction(ctx context.Context, kind engine.QuickAction) (*models.ProgramState, error)
	SuggestLoad(ctx context.Context, movement string) (*float64, error)
}

// Compile-time check: *program.Service satisfies ProgramSource.
var _ ProgramSource = (*program.Service)(nil)
