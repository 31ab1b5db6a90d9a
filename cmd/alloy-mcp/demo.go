package main

import (
	"encoding/json"
	"fmt"

	// Packages
	uitable "github.com/alloy-automation/alloy-mcp-go/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type DemoCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *DemoCommand) Run(g *Globals) error {
	fmt.Println("Alloy MCP Example")

	if err := cmd.connectivity(g); err != nil {
		return err
	}
	if err := cmd.resources(g); err != nil {
		return err
	}

	fmt.Println("\nAll demonstrations completed")
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// connectivity lists the published tools and executes the first one
func (cmd *DemoCommand) connectivity(g *Globals) error {
	fmt.Println("\n=== Connectivity Server Demo ===")

	if err := g.dial(); err != nil {
		return err
	}
	defer g.disconnect()

	// Show the first five tools
	tools := g.client.Tools()
	fmt.Println("\nAvailable tools:")
	for _, tool := range tools[:min(len(tools), 5)] {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	if len(tools) == 0 {
		fmt.Println("\nNo tools available for execution")
		return nil
	}

	// Execute the first tool with empty arguments
	name := tools[0].Name
	fmt.Printf("\nExecuting tool: %s\n", name)
	result, err := g.client.ExecuteTool(g.ctx, name, nil)
	if err != nil {
		return err
	}
	if result.IsError {
		fmt.Printf("\nTool execution failed: %s\n", result.Text())
		return nil
	}

	data, err := json.MarshalIndent(result.Content, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("\nTool execution successful: %s\n", name)
	fmt.Printf("Result: %s\n", string(data))
	return nil
}

// resources lists the demonstration resources and reads the first one
func (cmd *DemoCommand) resources(g *Globals) error {
	fmt.Println("\n=== Resources Demo ===")

	if err := g.dial(); err != nil {
		return err
	}
	defer g.disconnect()

	resources := g.client.Resources()
	fmt.Println("\nAvailable resources:")
	for _, resource := range resources[:min(len(resources), 5)] {
		fmt.Printf("  - %s: %s\n", resource.Name, resource.URI)
	}

	if len(resources) > 0 {
		content := g.client.ReadResource(resources[0].URI)
		fmt.Printf("\nResource content preview: %s\n", uitable.Truncate(content.Content, 200))
	}
	return nil
}
