package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/weightexile/core"
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleBuildFilterGroup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	statsDoc := request.GetString("stats", "")
	if strings.TrimSpace(statsDoc) == "" {
		return mcp.NewToolResultError("stats is required"), nil
	}
	raw, err := contract.ParseSelection([]byte(statsDoc))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid stats: %v", err)), nil
	}
	if len(raw) == 0 {
		return mcp.NewToolResultError("no stats selected"), nil
	}

	if err := contract.RevalidateScales(cfg, request.GetString("scales_override", "")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := core.GetSelectionResults(core.WithSuppressHeader(ctx), cfg, h.mgr, raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("build failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyBases(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bases := request.GetStringSlice("bases", nil)
	if len(bases) == 0 {
		return mcp.NewToolResultError("bases must contain at least one base name"), nil
	}

	jsonData, _ := json.MarshalIndent(core.GetClassifyResults(bases), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSearchStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Query = request.GetString("query", "")
	if strings.TrimSpace(cfg.Query) == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	limit := request.GetInt("limit", 0)
	switch {
	case limit < 0 || limit > contract.MaxResultLimit:
		return mcp.NewToolResultError(fmt.Sprintf("limit must be between 1 and %d", contract.MaxResultLimit)), nil
	case limit > 0:
		cfg.ResultLimit = limit
	case cfg.ResultLimit <= 0:
		cfg.ResultLimit = contract.DefaultResultLimit
	}

	results := core.GetStatsResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
