// rollprep-mcp serves the RollPrep MCP tools over stdio, for wiring the
// planner into an MCP-capable client on the same machine.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/rollprep/internal/mcp"
	"github.com/claude/rollprep/internal/plan"
	"github.com/claude/rollprep/internal/program"
	"github.com/claude/rollprep/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	dbPath := flag.String("db", "rollprep.db", "path to the sqlite state database")
	flag.Parse()

	// Logs go to stderr: stdout carries the MCP protocol stream.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	store, err := storage.OpenSQLite(*dbPath, log)
	if err != nil {
		log.Error("failed to open state store", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	svc := program.New(store, plan.NewRuleBased(), log)
	s := mcp.New(svc, Version, log)

	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
