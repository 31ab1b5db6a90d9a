// Implements a JSON-RPC 2.0 tool server over HTTP POST, based on the
// following specification:
// https://modelcontextprotocol.io/specification/2024-11-05/basic/lifecycle
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	// Packages
	tool "github.com/alloy-automation/alloy-mcp-go/pkg/tool"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Server struct {
	name    string
	version string

	// Private members
	mu       sync.RWMutex       // Handler map lock
	handlers map[string]Handler // Method handlers
	toolkit  *tool.Toolkit      // Toolkit for the server
	token    string             // When set, require a matching bearer token
	stream   bool               // When set, respond with a single SSE frame
}

type Handler func(context.Context, any, json.RawMessage) (any, error)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Event name used when responses are written as an event stream
	eventMessage = "message"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new server with the given name and version
func New(name, version string, opts ...Opt) (*Server, error) {
	self := &Server{
		name:     name,
		version:  version,
		handlers: make(map[string]Handler, 3),
	}

	// Apply options
	if err := self.apply(opts...); err != nil {
		return nil, err
	}

	// Register default handlers
	self.HandlerFunc(MessageTypeInitialize, self.handleInitialize)
	self.HandlerFunc(MessageTypeListTools, self.handleListTools)
	self.HandlerFunc(MessageTypeCallTool, self.handleCallTool)

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// HandlerFunc registers (or removes) a handler for a method
func (server *Server) HandlerFunc(method string, fn Handler) {
	server.mu.Lock()
	defer server.mu.Unlock()
	if fn == nil {
		delete(server.handlers, method)
	} else {
		server.handlers[method] = fn
	}
}

// ServeHTTP handles a single request envelope per POST. Failures below the
// protocol layer (wrong verb, bad credentials) are HTTP errors; everything
// else is answered with status OK and an error member in the envelope.
func (server *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		return
	}
	if server.token != "" && bearerToken(r) != server.token {
		_ = httpresponse.Error(w, httpresponse.Err(http.StatusUnauthorized))
		return
	}

	// Decode the request
	response := Response{Version: RPCVersion}
	var request Request
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Err = NewError(ErrorCodeParse, err.Error())
	} else {
		response = server.processRequest(r.Context(), &request)
	}

	// Write the response, either as a plain JSON body or as one
	// event-stream frame carrying the same payload
	if server.stream {
		stream := httpresponse.NewTextStream(w)
		if stream == nil {
			_ = httpresponse.Error(w, httpresponse.ErrInternalError)
			return
		}
		defer stream.Close()
		stream.Write(eventMessage, response)
		return
	}
	_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), response)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (server *Server) processRequest(ctx context.Context, request *Request) Response {
	response := Response{Version: RPCVersion, ID: request.ID}
	if result, err := server.call(ctx, request); err != nil {
		var target *Error
		if errors.As(err, &target) {
			response.Err = target
		} else {
			response.Err = NewError(ErrorCodeInternal, err.Error())
		}
	} else {
		response.Result = result
	}
	return response
}

func (server *Server) call(ctx context.Context, request *Request) (any, error) {
	server.mu.RLock()
	defer server.mu.RUnlock()

	fn, exists := server.handlers[request.Method]
	if !exists {
		return nil, NewError(ErrorCodeMethodNotFound, "method not found", request.Method)
	}

	return fn(ctx, request.ID, request.Payload)
}

// bearerToken returns the credential from the Authorization header, or an
// empty string when the header is absent or uses another scheme
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

///////////////////////////////////////////////////////////////////////////////
// HANDLERS

func (server *Server) handleInitialize(_ context.Context, _ any, _ json.RawMessage) (any, error) {
	response := new(ResponseInitialize)
	response.Version = ProtocolVersion
	response.ServerInfo.Name = server.name
	response.ServerInfo.Version = server.version
	response.Capabilities.Resources = map[string]any{
		"listChanged": false,
		"subscribe":   false,
	}
	response.Capabilities.Tools = map[string]any{
		"listChanged": false,
	}
	return response, nil
}

func (server *Server) handleListTools(_ context.Context, _ any, _ json.RawMessage) (any, error) {
	response := new(ResponseListTools)
	if server.toolkit == nil {
		response.Tools = []*Tool{}
		return response, nil
	}
	for _, t := range server.toolkit.Tools() {
		jsonSchema, err := t.Schema()
		if err != nil {
			jsonSchema = nil
		}
		response.Tools = append(response.Tools, &Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: jsonSchema,
		})
	}
	return response, nil
}

func (server *Server) handleCallTool(ctx context.Context, _ any, payload json.RawMessage) (any, error) {
	if server.toolkit == nil {
		return nil, NewError(ErrorCodeMethodNotFound, "no tools configured")
	}

	var req RequestToolCall
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, NewError(ErrorCodeInvalidParameters, err.Error())
	}

	// Marshal arguments to pass to the toolkit
	var input json.RawMessage
	if req.Arguments != nil {
		data, err := json.Marshal(req.Arguments)
		if err != nil {
			return nil, NewError(ErrorCodeInvalidParameters, err.Error())
		}
		input = data
	}

	// Run the tool
	result, err := server.toolkit.Run(ctx, req.Name, input)
	if err != nil {
		// Return the error as a tool error result (not a JSON-RPC error)
		return &ToolResult{
			Content: []*Content{{Type: "text", Text: err.Error()}},
			IsError: true,
		}, nil
	}

	// One content block: JSON text for display, the structured value
	// under data so callers can read fields without re-parsing
	data, err := json.Marshal(result)
	if err != nil {
		return nil, NewError(ErrorCodeInternal, err.Error())
	}

	return &ToolResult{
		Content: []*Content{{Type: "text", Text: string(data), Data: result}},
	}, nil
}
