package main

import (
	"fmt"

	// Packages
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	uitable "github.com/alloy-automation/alloy-mcp-go/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ResourcesCommand struct{}

type ReadCommand struct {
	URI string `arg:"" help:"Resource URI"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ResourcesCommand) Run(g *Globals) error {
	if err := g.dial(); err != nil {
		return err
	}
	defer g.disconnect()

	fmt.Println(uitable.Render(mcp.ResourceTable(g.client.Resources())))
	return nil
}

func (cmd *ReadCommand) Run(g *Globals) error {
	if err := g.dial(); err != nil {
		return err
	}
	defer g.disconnect()

	content := g.client.ReadResource(cmd.URI)
	fmt.Println(content.Content)
	return nil
}
