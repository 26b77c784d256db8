// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Tonelab MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Tonelab Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_color ---
	s.AddTool(mcp.NewTool("analyze_color",
		mcp.WithDescription("Classify a face image into a personal color season and store the profile."),
		mcp.WithString("image_path", mcp.Description("Path to the face image (PNG or JPEG)."), mcp.Required()),
		mcp.WithString("user", mcp.Description("User to analyze for (defaults to the configured user).")),
	), h.handleAnalyzeColor)

	// --- 2. Tool: record_emotion ---
	s.AddTool(mcp.NewTool("record_emotion",
		mcp.WithDescription("Score diary text on five emotion axes and store the observation."),
		mcp.WithString("text", mcp.Description("The diary text to score."), mcp.Required()),
		mcp.WithString("user", mcp.Description("User to record for (defaults to the configured user).")),
	), h.handleRecordEmotion)

	// --- 3. Tool: weekly_insight ---
	s.AddTool(mcp.NewTool("weekly_insight",
		mcp.WithDescription("Aggregate one user's week of emotion entries into averages, trends and advice."),
		mcp.WithString("user", mcp.Description("User to aggregate for (defaults to the configured user).")),
		mcp.WithString("week", mcp.Description("Week selector: 'current', 'last' or a Monday date (2006-01-02).")),
	), h.handleWeeklyInsight)

	// --- 4. Tool: get_palette ---
	s.AddTool(mcp.NewTool("get_palette",
		mcp.WithDescription("Resolve the five-color palette for a season, or for the user's stored profile."),
		mcp.WithString("season", mcp.Description("Season to resolve (defaults to the stored profile)."), mcp.Enum("spring", "summer", "autumn", "winter")),
		mcp.WithString("subtype", mcp.Description("Subtype within the season."), mcp.Enum("warm", "cool", "clear", "soft", "deep", "light")),
		mcp.WithString("user", mcp.Description("User whose stored profile to use when no season is given.")),
	), h.handleGetPalette)

	// --- 5. Tool: daily_healing ---
	s.AddTool(mcp.NewTool("daily_healing",
		mcp.WithDescription("Pick the healing color of the day with a daily affirmation."),
		mcp.WithString("user", mcp.Description("User to pick for (defaults to the configured user).")),
	), h.handleDailyHealing)

	// --- 6. Tool: get_recommendations ---
	s.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription("Recommend fashion, food and activity items for the user's stored profile."),
		mcp.WithString("user", mcp.Description("User to recommend for (defaults to the configured user).")),
	), h.handleGetRecommendations)

	return s
}

// StartMCPServer starts the Tonelab MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
