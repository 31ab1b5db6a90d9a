package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ExecuteTool runs a tool on the server with the given name and arguments.
// Failures during execution, including an error member in the response, are
// returned in the result with IsError set and the message as its sole
// content block. The only error returned is calling before Connect.
func (c *Client) ExecuteTool(ctx context.Context, name string, args map[string]any) (*mcp.ToolResult, error) {
	c.mu.Lock()
	connected := c.connected
	c.mu.Unlock()
	if !connected {
		return nil, alloy.ErrNotConnected
	}

	result, err := c.callTool(ctx, name, args)
	if err != nil {
		return errorResult(err), nil
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// callTool validates the call against the cached tool schema, sends it, and
// decodes the result.
func (c *Client) callTool(ctx context.Context, name string, args map[string]any) (*mcp.ToolResult, error) {
	if err := c.validateToolCall(ctx, name, args); err != nil {
		return nil, err
	}

	resp, err := c.doRPC(ctx, mcp.MessageTypeCallTool, mcp.RequestToolCall{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}

	// Decode result
	var result mcp.ToolResult
	if err := decodeResult(resp.Result, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// validateToolCall validates that the tool exists and the arguments match
// the tool's input schema. If tools are not yet cached, it fetches them first.
func (c *Client) validateToolCall(ctx context.Context, name string, args map[string]any) error {
	// Fetch tools if not cached
	c.mu.Lock()
	if c.tools == nil {
		c.mu.Unlock()
		if _, err := c.ListTools(ctx); err != nil {
			return fmt.Errorf("failed to fetch tools: %w", err)
		}
		c.mu.Lock()
	}
	tool := c.lookupTool(name)
	c.mu.Unlock()

	// Check tool exists
	if tool == nil {
		return mcp.NewError(mcp.ErrorCodeMethodNotFound, fmt.Sprintf("tool not found: %q", name))
	}

	// Validate arguments against input schema if present
	if tool.InputSchema == nil {
		return nil
	}

	// Marshal the input schema to JSON, then parse with jsonschema
	schemaData, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return fmt.Errorf("invalid input schema for tool %q: %w", name, err)
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("invalid input schema for tool %q: %w", name, err)
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("invalid input schema for tool %q: %w", name, err)
	}

	// Validate against schema
	var argsValue any = map[string]any{}
	if args != nil {
		argsValue = args
	}
	if err := resolved.Validate(argsValue); err != nil {
		return mcp.NewError(mcp.ErrorCodeInvalidParameters, fmt.Sprintf("argument validation failed: %v", err))
	}

	return nil
}

// lookupTool returns the cached tool with the given name, or nil.
// Must be called with c.mu held.
func (c *Client) lookupTool(name string) *mcp.Tool {
	for _, t := range c.tools {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// errorResult converts a failure into a tool result. Protocol errors keep
// their message only; anything else uses the error string.
func errorResult(err error) *mcp.ToolResult {
	message := err.Error()
	var rpcErr *mcp.Error
	if errors.As(err, &rpcErr) {
		message = rpcErr.Message
	}
	return &mcp.ToolResult{
		Content: []*mcp.Content{{Type: "text", Text: message}},
		IsError: true,
	}
}
