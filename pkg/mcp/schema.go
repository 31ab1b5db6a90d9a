package mcp

import (
	"encoding/json"
	"fmt"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Request struct {
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	ID      any             `json:"id,omitempty"` // string or number for non-notifications
	Payload json.RawMessage `json:"params,omitempty"`
}

type Response struct {
	Version string `json:"jsonrpc"`
	ID      any    `json:"id,omitempty"` // string or number
	Result  any    `json:"result,omitempty"`
	Err     *Error `json:"error,omitempty"`
}

type Error struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type RequestInitialize struct {
	Version      string         `json:"protocolVersion"`
	Capabilities map[string]any `json:"capabilities"`
	ClientInfo   ClientInfo     `json:"clientInfo"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ResponseInitialize struct {
	Capabilities struct {
		Tools     map[string]any `json:"tools"`
		Resources map[string]any `json:"resources"`
	} `json:"capabilities"`
	ServerInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"serverInfo"`
	Version string `json:"protocolVersion"`
}

type RequestToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Tool represents a tool definition with its input schema
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"inputSchema"`
}

type ResponseListTools struct {
	Tools []*Tool `json:"tools"`
}

// ToolResult is the outcome of a single tool invocation. Failures are
// carried in-band: IsError is set and the message is the sole content block.
type ToolResult struct {
	Content []*Content `json:"content"`
	IsError bool       `json:"isError,omitempty"`
}

// Content represents a single piece of content in a tool result
type Content struct {
	Type     string `json:"type"` // "text", "resource"
	Text     string `json:"text,omitempty"`
	Data     any    `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	URI      string `json:"uri,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Resource is a named piece of demonstration content addressed by URI
type Resource struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

type ResourceContent struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RPCVersion      = "2.0"
	ProtocolVersion = "2024-11-05"

	// Message types
	MessageTypeInitialize = "initialize"
	MessageTypeListTools  = "tools/list"
	MessageTypeCallTool   = "tools/call"

	// Error codes
	ErrorCodeParse             = -32700
	ErrorCodeInvalidRequest    = -32600
	ErrorCodeMethodNotFound    = -32601
	ErrorCodeInvalidParameters = -32602
	ErrorCodeInternal          = -32603
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewError(code int, message string, data ...any) *Error {
	switch len(data) {
	case 0:
		return &Error{Code: code, Message: message}
	case 1:
		return &Error{Code: code, Message: message, Data: data[0]}
	default:
		return &Error{Code: code, Message: message, Data: data}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Error) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("%d: %s (%v)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Text returns the concatenated text blocks of the result
func (r *ToolResult) Text() string {
	var text string
	for _, content := range r.Content {
		if content.Type == "text" {
			if text != "" {
				text += "\n"
			}
			text += content.Text
		}
	}
	return text
}

// Decode unmarshals the structured data of the first content block into dest
func (r *ToolResult) Decode(dest any) error {
	if len(r.Content) == 0 || r.Content[0].Data == nil {
		return alloy.ErrNotFound.With("no structured content in result")
	}
	data, err := json.Marshal(r.Content[0].Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
