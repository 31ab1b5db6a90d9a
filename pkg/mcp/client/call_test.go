package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
	connectivity "github.com/alloy-automation/alloy-mcp-go/pkg/connectivity"
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	assert "github.com/stretchr/testify/assert"
)

func Test_client_010(t *testing.T) {
	// Executing a tool before connecting is a precondition failure,
	// not a tool error result
	assert := assert.New(t)

	c, err := New("http://localhost/mcp", clientInfo)
	assert.NoError(err)

	result, err := c.ExecuteTool(context.Background(), "connectivity.listIntegrations", nil)
	assert.ErrorIs(err, alloy.ErrNotConnected)
	assert.Nil(result)
}

func Test_client_011(t *testing.T) {
	// An unknown tool name becomes an error result
	assert := assert.New(t)

	ts := newTestServer(t)
	c, err := New(ts.URL, clientInfo)
	assert.NoError(err)
	assert.NoError(c.Connect(context.Background()))

	result, err := c.ExecuteTool(context.Background(), "connectivity.nonexistent", nil)
	assert.NoError(err)
	if assert.NotNil(result) {
		assert.True(result.IsError)
		assert.Contains(result.Text(), "tool not found")
	}
}

func Test_client_012(t *testing.T) {
	// Arguments which fail schema validation become an error result
	// without reaching the server
	assert := assert.New(t)

	ts := newTestServer(t)
	c, err := New(ts.URL, clientInfo)
	assert.NoError(err)
	assert.NoError(c.Connect(context.Background()))

	result, err := c.ExecuteTool(context.Background(), "connectivity.listIntegrations", map[string]any{
		"category": "finance",
	})
	assert.NoError(err)
	if assert.NotNil(result) {
		assert.True(result.IsError)
		assert.Contains(result.Text(), "argument validation failed")
	}
}

func Test_client_013(t *testing.T) {
	// A successful call returns content blocks with structured data
	assert := assert.New(t)

	ts := newTestServer(t)
	c, err := New(ts.URL, clientInfo)
	assert.NoError(err)
	assert.NoError(c.Connect(context.Background()))

	result, err := c.ExecuteTool(context.Background(), "connectivity.listIntegrations", map[string]any{
		"limit": 2,
	})
	assert.NoError(err)
	if !assert.NotNil(result) {
		return
	}
	assert.False(result.IsError)
	assert.Len(result.Content, 1)
	assert.Equal("text", result.Content[0].Type)
	assert.NotEmpty(result.Content[0].Text)

	var response connectivity.ListIntegrationsResponse
	assert.NoError(result.Decode(&response))
	assert.Len(response.Integrations, 2)
	assert.Equal(8, response.Total)
}

func Test_client_014(t *testing.T) {
	// An error member in the call response becomes an error result whose
	// sole content block is the error message
	assert := assert.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req mcp.Request
		assert.NoError(json.NewDecoder(r.Body).Decode(&req))

		resp := mcp.Response{Version: mcp.RPCVersion, ID: req.ID}
		switch req.Method {
		case mcp.MessageTypeInitialize:
			resp.Result = map[string]any{
				"protocolVersion": mcp.ProtocolVersion,
				"serverInfo":      map[string]any{"name": "raw", "version": "0.0.0"},
			}
		case mcp.MessageTypeListTools:
			resp.Result = map[string]any{
				"tools": []map[string]any{
					{"name": "broken", "description": "always fails", "inputSchema": map[string]any{}},
				},
			}
		case mcp.MessageTypeCallTool:
			resp.Err = mcp.NewError(mcp.ErrorCodeInternal, "upstream worker crashed")
		}
		assert.NoError(json.NewEncoder(w).Encode(resp))
	}))
	defer ts.Close()

	c, err := New(ts.URL, clientInfo)
	assert.NoError(err)
	assert.NoError(c.Connect(context.Background()))

	result, err := c.ExecuteTool(context.Background(), "broken", nil)
	assert.NoError(err)
	if !assert.NotNil(result) {
		return
	}
	assert.True(result.IsError)
	assert.Len(result.Content, 1)

	// The message alone, not the code-prefixed error string
	assert.Equal("upstream worker crashed", result.Content[0].Text)
	assert.False(strings.Contains(result.Content[0].Text, "-32603"))
}

func Test_client_015(t *testing.T) {
	// A tool failure reported by the server passes through unchanged
	assert := assert.New(t)

	ts := newTestServer(t)
	c, err := New(ts.URL, clientInfo)
	assert.NoError(err)
	assert.NoError(c.Connect(context.Background()))

	// The arguments satisfy the schema, but the tool rejects the unknown
	// integration when creating the connection
	result, err := c.ExecuteTool(context.Background(), "connectivity.createConnection", map[string]any{
		"integrationId": "unknown-integration",
		"name":          "Test Connection",
	})
	assert.NoError(err)
	if assert.NotNil(result) {
		assert.True(result.IsError)
		assert.NotEmpty(result.Text())
	}
}
