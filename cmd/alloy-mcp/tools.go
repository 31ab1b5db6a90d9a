package main

import (
	"encoding/json"
	"fmt"
	"os"

	// Packages
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	uitable "github.com/alloy-automation/alloy-mcp-go/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCommand struct{}

type CallCommand struct {
	Name string   `arg:"" help:"Tool name"`
	Args []string `arg:"" help:"Tool arguments as key=value pairs" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCommand) Run(g *Globals) error {
	if err := g.dial(); err != nil {
		return err
	}
	defer g.disconnect()

	// Render the tools as a table
	tools := g.client.Tools()
	fmt.Println(uitable.Render(mcp.ToolTable(tools)))

	// With verbose output, print the input schema for each tool
	if g.Verbose {
		for _, tool := range tools {
			data, err := json.MarshalIndent(tool.InputSchema, "  ", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("%s\n  %s\n", tool.Name, string(data))
		}
	}
	return nil
}

func (cmd *CallCommand) Run(g *Globals) error {
	if err := g.dial(); err != nil {
		return err
	}
	defer g.disconnect()

	// Parse key=value arguments
	args, err := parseArgs(cmd.Args)
	if err != nil {
		return err
	}

	// Execute the tool and print the content blocks
	fmt.Printf("\nExecuting tool: %s\n", cmd.Name)
	result, err := g.client.ExecuteTool(g.ctx, cmd.Name, args)
	if err != nil {
		return err
	}
	if result.IsError {
		fmt.Fprintln(os.Stderr, "Tool returned an error")
	}
	for _, content := range result.Content {
		switch content.Type {
		case "text":
			fmt.Println(content.Text)
		default:
			fmt.Printf("[%s] %s\n", content.Type, content.MimeType)
		}
	}
	return nil
}
