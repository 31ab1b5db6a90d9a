package client

import (
	"context"
	"encoding/json"

	// Packages
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListTools fetches the tools available on the server and caches them for
// validation in ExecuteTool. Tools with no inputSchema member are given an
// empty schema.
func (c *Client) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	resp, err := c.doRPC(ctx, mcp.MessageTypeListTools, nil)
	if err != nil {
		return nil, err
	}

	// Decode result
	var listResp mcp.ResponseListTools
	if err := decodeResult(resp.Result, &listResp); err != nil {
		return nil, err
	}

	// Absent schemas decode as nil; normalise to an empty schema
	for _, t := range listResp.Tools {
		if t.InputSchema == nil {
			t.InputSchema = map[string]any{}
		}
	}

	// Cache tools in server list order
	c.mu.Lock()
	c.tools = listResp.Tools
	c.mu.Unlock()

	return listResp.Tools, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// decodeResult marshals resp.Result (any) back to JSON and decodes into dest.
func decodeResult(result any, dest any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
