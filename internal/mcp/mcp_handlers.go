package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// scopedConfig clones the base config for one tool call, honoring an
// optional per-call user override.
func (h *toolHandler) scopedConfig(request mcp.CallToolRequest) *contract.Config {
	if user := request.GetString("user", ""); user != "" {
		return h.baseCfg.CloneWithUser(user)
	}
	return h.baseCfg.Clone()
}

func (h *toolHandler) handleAnalyzeColor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	imagePath := request.GetString("image_path", "")
	if imagePath == "" {
		return mcp.NewToolResultError("image_path is required"), nil
	}
	cfg := h.scopedConfig(request)

	obs, _, err := core.GetColorAnalysisResults(core.WithSuppressedHeaders(ctx), cfg, h.mgr, imagePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("color analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(obs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRecordEmotion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	cfg := h.scopedConfig(request)

	obs, healing, _, err := core.GetEmotionAnalysisResults(core.WithSuppressedHeaders(ctx), cfg, h.mgr, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("emotion analysis failed: %v", err)), nil
	}

	payload := struct {
		schema.EmotionObservation
		HealingColors []schema.HealingColor `json:"healing_colors"`
	}{obs, healing}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleWeeklyInsight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)
	if week := request.GetString("week", ""); week != "" {
		weekStart, err := contract.ParseWeekFlag(week, time.Now().UTC())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid weekly parameters: %v", err)), nil
		}
		cfg.WeekStart = weekStart
	}

	agg, cached, _, err := core.GetWeeklyInsightResults(core.WithSuppressedHeaders(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weekly aggregation failed: %v", err)), nil
	}

	payload := struct {
		Cached bool `json:"cached"`
		schema.WeeklyAggregate
	}{cached, agg}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPalette(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)
	seasonStr := request.GetString("season", "")
	subtypeStr := request.GetString("subtype", "")

	season, subtype, colors, err := core.GetPaletteResults(core.WithSuppressedHeaders(ctx), cfg, h.mgr, seasonStr, subtypeStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("palette lookup failed: %v", err)), nil
	}

	payload := struct {
		Season      schema.Season         `json:"season"`
		Subtype     schema.Subtype        `json:"subtype"`
		Tone        schema.Tone           `json:"tone"`
		Label       string                `json:"label"`
		Description string                `json:"description,omitempty"`
		Colors      []schema.PaletteColor `json:"colors"`
	}{season, subtype, schema.DeriveTone(subtype), schema.DisplayLabel(season, subtype), core.SeasonDescription(season), colors}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDailyHealing(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)

	healing, cached, err := core.GetDailyHealingResults(core.WithSuppressedHeaders(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("daily healing failed: %v", err)), nil
	}

	payload := struct {
		Cached bool `json:"cached"`
		schema.DailyHealing
	}{cached, healing}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRecommendations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)

	set, err := core.GetRecommendationsResults(core.WithSuppressedHeaders(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendations failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(set, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
