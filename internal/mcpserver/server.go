// Package mcpserver exposes the app's operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seekmux/seekmux/internal/app"
)

// New builds the MCP server with the web_search and web_fetch tools
// registered against a.
func New(a *app.App, version string) *server.MCPServer {
	s := server.NewMCPServer("seekmux", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	searchTool := mcp.NewTool("web_search",
		mcp.WithDescription("Search the web across multiple engines and return a deduplicated, ad-filtered result list."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
		mcp.WithNumber("numResults",
			mcp.Description("Maximum number of results to return (defaults to the server's configured limit)"),
		),
	)
	s.AddTool(searchTool, handleSearch(a))

	fetchTool := mcp.NewTool("web_fetch",
		mcp.WithDescription("Fetch a web page and return its content, simplified to Markdown by default."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Absolute URL of the page to fetch"),
		),
		mcp.WithNumber("maxCharSize",
			mcp.Description("Character budget for the returned text (defaults to the server's configured budget)"),
		),
		mcp.WithBoolean("simplify",
			mcp.Description("Convert HTML pages to Markdown"),
			mcp.DefaultBool(true),
		),
	)
	s.AddTool(fetchTool, handleFetch(a))

	return s
}

// Serve runs the server over stdio, blocking until the stream closes.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func handleSearch(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		// Zero hands the decision to the app so the configured default
		// applies when the client omits the argument.
		numResults := req.GetInt("numResults", 0)

		results, err := a.WebSearch(ctx, query, numResults)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		payload, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode results: %w", err)
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

func handleFetch(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rawURL, err := req.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		maxChars := req.GetInt("maxCharSize", 0)
		simplify := req.GetBool("simplify", true)

		text, err := a.WebFetch(ctx, rawURL, maxChars, simplify)
		if err != nil {
			// Fetch failures are expected operational outcomes (bad URL,
			// slow host, 4xx/5xx); report them as tool errors with their
			// categorized message rather than protocol errors.
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}
