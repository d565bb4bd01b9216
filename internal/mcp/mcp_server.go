// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/weightexile/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the weightexile MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"weightexile Filter Group Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	s.AddTool(mcp.NewTool("build_filter_group",
		mcp.WithDescription("Turn prioritized stats into a weighted-sum (weight2) trade filter group with a suggested minimum."),
		mcp.WithString("stats", mcp.Description(`Selected stats as JSON or YAML: a list of {"id", "priority" (1-5), "direction" ("at-least" or "at-most"), "desiredMin"} objects.`), mcp.Required()),
		mcp.WithString("scales_override", mcp.Description("Optional per-stat scale overrides (format: 'id:scale,id:scale').")),
	), h.handleBuildFilterGroup)

	s.AddTool(mcp.NewTool("classify_bases",
		mcp.WithDescription("Classify item base names (e.g. 'Hubris Circlet') into item types (e.g. 'Helmet')."),
		mcp.WithArray("bases", mcp.Description("Item base names to classify."), mcp.WithStringItems(), mcp.Required()),
	), h.handleClassifyBases)

	s.AddTool(mcp.NewTool("search_stats",
		mcp.WithDescription("Search the trade stat catalog by text or id."),
		mcp.WithString("query", mcp.Description("Case-insensitive text to look for in stat text or id."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleSearchStats)

	return s
}

// StartMCPServer starts the weightexile MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
