package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	alloy "github.com/alloy-automation/alloy-mcp-go"
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	mcpclient "github.com/alloy-automation/alloy-mcp-go/pkg/mcp/client"
	version "github.com/alloy-automation/alloy-mcp-go/pkg/version"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Globals

	// Commands
	Demo      DemoCommand      `cmd:"" help:"Run the connectivity and resources demonstrations"`
	Tools     ToolsCommand     `cmd:"" help:"List tools published by the server"`
	Call      CallCommand      `cmd:"" help:"Call a tool by name"`
	Resources ResourcesCommand `cmd:"" help:"List demonstration resources"`
	Read      ReadCommand      `cmd:"" help:"Read a demonstration resource by URI"`
	Workflow  WorkflowCommand  `cmd:"" help:"Run an example workflow"`
	Serve     ServeCommand     `cmd:"" help:"Run a mock Alloy MCP server"`
	Version   VersionCommand   `cmd:"" help:"Print version information"`
}

type Globals struct {
	URL     string        `name:"url" env:"NEXT_PUBLIC_MCP_SERVER_URL" default:"https://mcp.runalloy.com/mcp" help:"Alloy MCP server URL"`
	Token   string        `name:"token" env:"NEXT_PUBLIC_MCP_ACCESS_TOKEN" help:"Alloy MCP access token"`
	Debug   bool          `name:"debug" help:"Enable debug output"`
	Verbose bool          `name:"verbose" help:"Enable verbose output"`
	Timeout time.Duration `name:"timeout" help:"HTTP request timeout"`

	// Private
	ctx    context.Context
	client *mcpclient.Client
}

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func main() {
	// Load environment from a .env file, if one is present
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Client example for the Alloy MCP server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context which is cancelled on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the selected command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(g *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// connect creates the MCP client and stores it on Globals. The access
// token is required for all commands which speak to a server.
func (g *Globals) connect() error {
	if g.Token == "" {
		return alloy.ErrMissingToken.With("set NEXT_PUBLIC_MCP_ACCESS_TOKEN in your environment or .env file")
	}

	// Client options
	opts := []client.ClientOpt{
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: g.Token}),
	}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Timeout != 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}

	// Create the client
	c, err := mcpclient.New(g.URL, mcp.ClientInfo{
		Name:    "alloy-mcp-go",
		Version: version.Version(),
	}, opts...)
	if err != nil {
		return err
	}

	g.client = c
	return nil
}

// dial connects to the server and establishes a session, reporting
// progress on stdout
func (g *Globals) dial() error {
	if err := g.connect(); err != nil {
		return err
	}
	fmt.Println("Initializing connection to Alloy MCP Server...")
	if err := g.client.Connect(g.ctx); err != nil {
		return err
	}
	fmt.Println("Connected to Alloy MCP Server")
	fmt.Printf("Discovered %d tools\n", len(g.client.Tools()))
	return nil
}

// disconnect closes the session, reporting when one was open
func (g *Globals) disconnect() {
	if g.client == nil {
		return
	}
	connected := g.client.ServerInfo() != nil
	if err := g.client.Close(); err == nil && connected {
		fmt.Println("\nDisconnected from Alloy MCP Server")
	}
	g.client = nil
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// parseArgs converts key=value pairs to tool arguments. Values are
// parsed as JSON where possible, otherwise passed as strings.
func parseArgs(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	result := make(map[string]any, len(args))
	for _, kv := range args {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, alloy.ErrBadParameter.Withf("argument must be key=value, got %q", kv)
		}
		// Try to parse the value as JSON (for numbers, booleans, objects)
		var v any
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			v = value
		}
		result[key] = v
	}
	return result, nil
}
