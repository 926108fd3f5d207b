package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"funknotes/internal/adapters/prompt"
	"funknotes/internal/application/commands"
)

// RegisterWriteTools adds all write note tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, ws *commands.Workspace) {
	s.AddTool(newProjectTool(), newProjectHandler(ws))
	s.AddTool(addObjectTool(), addObjectHandler(ws))
	s.AddTool(addItemTool(), addItemHandler(ws))
	s.AddTool(deleteItemsTool(), deleteItemsHandler(ws))
	s.AddTool(deleteObjectTool(), deleteObjectHandler(ws))
}

// answering returns a copy of ws whose prompter answers every question
// with answer. Tool calls cannot prompt, so arguments decide instead.
func answering(ws *commands.Workspace, answer bool) *commands.Workspace {
	clone := *ws
	clone.Prompt = prompt.NewFixed(answer)
	return &clone
}

func confirmArg(what string) mcp.ToolOption {
	return mcp.WithBoolean("confirm",
		mcp.Description(fmt.Sprintf("Must be true to %s. Anything else declines.", what)),
	)
}

// --- new_project ---

func newProjectTool() mcp.Tool {
	return mcp.NewTool("new_project",
		mcp.WithDescription("Create an empty project. It gets the next free index."),
		mcp.WithString("name",
			mcp.Description("Project name"),
			mcp.Required(),
		),
	)
}

func newProjectHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewNewProjectCommand(ws, req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_object ---

func addObjectTool() mcp.Tool {
	return mcp.NewTool("add_object",
		mcp.WithDescription("Create an empty object in a project."),
		projectArg(),
		mcp.WithString("name",
			mcp.Description("Object name"),
			mcp.Required(),
		),
	)
}

func addObjectHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddObjectCommand(ws, req.GetString("project", ""), req.GetString("name", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_item ---

func addItemTool() mcp.Tool {
	return mcp.NewTool("add_item",
		mcp.WithDescription("Append a timestamped item to an object."),
		projectArg(),
		mcp.WithString("object",
			mcp.Description("Object name"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("Item text, at most 1023 bytes"),
			mcp.Required(),
		),
		mcp.WithBoolean("create_object",
			mcp.Description("Create the object when it does not exist (default true)"),
		),
	)
}

func addItemHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddItemCommand(
			answering(ws, req.GetBool("create_object", true)),
			req.GetString("project", ""),
			req.GetString("object", ""),
			req.GetString("text", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		msg := fmt.Sprintf("Added item %d to '%s' at %s", result.Index, result.Object, result.Item.Timestamp)
		if result.CreatedObject {
			msg = fmt.Sprintf("Created object '%s'\n%s", result.Object, msg)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- delete_items ---

func deleteItemsTool() mcp.Tool {
	return mcp.NewTool("delete_items",
		mcp.WithDescription("Delete items of an object by 1-based index. Accepts lists and ranges such as 1,3,5-7."),
		projectArg(),
		mcp.WithString("object",
			mcp.Description("Object name"),
			mcp.Required(),
		),
		mcp.WithString("indexes",
			mcp.Description("Index list, e.g. 2 or 1,3 or 4-6"),
			mcp.Required(),
		),
		confirmArg("delete"),
	)
}

func deleteItemsHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteItemsCommand(
			answering(ws, req.GetBool("confirm", false)),
			req.GetString("project", ""),
			req.GetString("object", ""),
			req.GetString("indexes", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_object ---

func deleteObjectTool() mcp.Tool {
	return mcp.NewTool("delete_object",
		mcp.WithDescription("Delete an object with all its items and history."),
		projectArg(),
		mcp.WithString("name",
			mcp.Description("Object name"),
			mcp.Required(),
		),
		confirmArg("delete"),
	)
}

func deleteObjectHandler(ws *commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteObjectCommand(
			answering(ws, req.GetBool("confirm", false)),
			req.GetString("project", ""),
			req.GetString("name", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
