package mcp_test

import (
	"encoding/json"
	"testing"

	// Packages
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	assert "github.com/stretchr/testify/assert"
)

func TestRequestMarshal(t *testing.T) {
	assert := assert.New(t)

	// Without params the member is omitted entirely
	data, err := json.Marshal(mcp.Request{Version: mcp.RPCVersion, Method: mcp.MessageTypeListTools, ID: 1})
	assert.NoError(err)
	assert.JSONEq(`{"jsonrpc":"2.0","method":"tools/list","id":1}`, string(data))
	assert.NotContains(string(data), "params")

	// With params the member is included
	params, err := json.Marshal(mcp.RequestToolCall{Name: "x"})
	assert.NoError(err)
	data, err = json.Marshal(mcp.Request{Version: mcp.RPCVersion, Method: mcp.MessageTypeCallTool, ID: 2, Payload: params})
	assert.NoError(err)
	assert.JSONEq(`{"jsonrpc":"2.0","method":"tools/call","id":2,"params":{"name":"x"}}`, string(data))
}

func TestErrorString(t *testing.T) {
	assert := assert.New(t)

	err := mcp.NewError(mcp.ErrorCodeMethodNotFound, "method not found")
	assert.Equal("-32601: method not found", err.Error())

	err = mcp.NewError(mcp.ErrorCodeMethodNotFound, "method not found", "prompts/list")
	assert.Equal("-32601: method not found (prompts/list)", err.Error())
}

func TestToolResultText(t *testing.T) {
	assert := assert.New(t)

	result := mcp.ToolResult{
		Content: []*mcp.Content{
			{Type: "text", Text: "first"},
			{Type: "resource", URI: "alloy://integrations"},
			{Type: "text", Text: "second"},
		},
	}
	assert.Equal("first\nsecond", result.Text())
}

func TestToolResultDecode(t *testing.T) {
	assert := assert.New(t)

	// Without structured data there is nothing to decode
	empty := mcp.ToolResult{Content: []*mcp.Content{{Type: "text", Text: "plain"}}}
	var dest map[string]any
	assert.Error(empty.Decode(&dest))

	// Structured data decodes into the destination
	result := mcp.ToolResult{Content: []*mcp.Content{{
		Type: "text",
		Text: `{"id":"conn_1"}`,
		Data: map[string]any{"id": "conn_1"},
	}}}
	assert.NoError(result.Decode(&dest))
	assert.Equal("conn_1", dest["id"])
}
