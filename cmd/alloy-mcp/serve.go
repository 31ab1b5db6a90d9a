package main

import (
	"fmt"
	"os"

	// Packages
	connectivity "github.com/alloy-automation/alloy-mcp-go/pkg/connectivity"
	embedded "github.com/alloy-automation/alloy-mcp-go/pkg/embedded"
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	tool "github.com/alloy-automation/alloy-mcp-go/pkg/tool"
	version "github.com/alloy-automation/alloy-mcp-go/pkg/version"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCommand struct {
	Addr string `name:"addr" default:"localhost:8080" help:"Address to listen on"`
	SSE  bool   `name:"sse" help:"Respond with single-frame server-sent events"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCommand) Run(g *Globals) error {
	// Register the demonstration tools
	toolkit, err := tool.NewToolkit(connectivity.NewTools()...)
	if err != nil {
		return err
	}
	if err := toolkit.Register(embedded.NewTools()...); err != nil {
		return err
	}

	// Create the server. When a token is set, requests without it
	// are rejected.
	opts := []mcp.Opt{mcp.WithToolKit(toolkit)}
	if g.Token != "" {
		opts = append(opts, mcp.WithToken(g.Token))
	}
	if cmd.SSE {
		opts = append(opts, mcp.WithEventStream())
	}
	server, err := mcp.New("alloy-mcp-mock", version.Version(), opts...)
	if err != nil {
		return err
	}

	// Create the HTTP server
	httpserver, err := httpserver.New(cmd.Addr, server, nil)
	if err != nil {
		return err
	}

	// Run the server until the context is cancelled
	fmt.Fprintf(os.Stderr, "Alloy MCP server listening on %s\n", cmd.Addr)
	if err := httpserver.Run(g.ctx); err != nil {
		return err
	}

	// Return success
	fmt.Fprintln(os.Stderr, "Alloy MCP server stopped")
	return nil
}
