package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"funknotes/internal/application/commands"
	"funknotes/internal/domain"
)

// RegisterReadTools adds all read-only note tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, ws *commands.Workspace) {
	s.AddTool(listProjectsTool(), listProjectsHandler(ws))
	s.AddTool(listObjectsTool(), listObjectsHandler(ws))
	s.AddTool(listItemsTool(), listItemsHandler(ws))
	s.AddTool(historyTool(), historyHandler(ws))
	s.AddTool(searchTool(), searchHandler(ws))
}

func projectArg() mcp.ToolOption {
	return mcp.WithString("project",
		mcp.Description("Project name or index. Omit to use the primary project."),
	)
}

// --- list_projects ---

func listProjectsTool() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("List projects with their index. The primary project is marked."),
		mcp.WithString("pattern",
			mcp.Description("Glob pattern on project names (e.g. work*). Omit to list all."),
		),
	)
}

func listProjectsHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projects, err := commands.NewListProjectsCommand(ws, req.GetString("pattern", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(projects, formatProject)
	}
}

// --- list_objects ---

func listObjectsTool() mcp.Tool {
	return mcp.NewTool("list_objects",
		mcp.WithDescription("List the objects of a project with their item counts."),
		projectArg(),
	)
}

func listObjectsHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listing, err := commands.NewListObjectsCommand(ws, req.GetString("project", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(listing.Objects, formatObject)
	}
}

// --- list_items ---

func listItemsTool() mcp.Tool {
	return mcp.NewTool("list_items",
		mcp.WithDescription("List the items of an object, oldest first, with their 1-based index and timestamp."),
		projectArg(),
		mcp.WithString("object",
			mcp.Description("Object name"),
			mcp.Required(),
		),
	)
}

func listItemsHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListItemsCommand(ws, req.GetString("project", ""), req.GetString("object", ""))
		listing, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(listing.Items, formatItem)
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Show the add/delete history of an object."),
		projectArg(),
		mcp.WithString("object",
			mcp.Description("Object name"),
			mcp.Required(),
		),
	)
}

func historyHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewShowHistoryCommand(ws, req.GetString("project", ""), req.GetString("object", ""))
		listing, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(listing.Entries, formatHistory)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Find items containing every keyword, ignoring case."),
		projectArg(),
		mcp.WithString("object",
			mcp.Description("Limit the search to one object"),
		),
		mcp.WithString("query",
			mcp.Description("Space separated keywords"),
			mcp.Required(),
		),
	)
}

func searchHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keywords := strings.Fields(req.GetString("query", ""))
		cmd := commands.NewSearchCommand(ws, req.GetString("project", ""), req.GetString("object", ""), keywords...)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results.Matches) == 0 {
			return mcp.NewToolResultText("No matches found."), nil
		}
		return formatEntities(results.Matches, formatMatch)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatProject(p domain.ProjectSummary) string {
	if p.IsPrimary {
		return fmt.Sprintf("[%d]  %s  (primary)", p.Index, p.Name)
	}
	return fmt.Sprintf("[%d]  %s", p.Index, p.Name)
}

func formatObject(o commands.ObjectSummary) string {
	return fmt.Sprintf("%s  (%d items)", o.Name, o.Count)
}

func formatItem(i commands.NumberedItem) string {
	return fmt.Sprintf("%d.  [%s]  %s", i.Index, i.Timestamp, i.Text)
}

func formatHistory(e domain.HistoryEntry) string {
	return fmt.Sprintf("%s  [%s]  %s", e.Action, e.Timestamp, e.Text)
}

func formatMatch(r domain.SearchResult) string {
	return fmt.Sprintf("%s #%d  [%s]  %s", r.Object, r.Index, r.Item.Timestamp, r.Item.Text)
}
