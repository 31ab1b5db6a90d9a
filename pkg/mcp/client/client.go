package client

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"sync"
	"sync/atomic"

	// Packages
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client talks to a remote tool server over HTTP using JSON-RPC 2.0
// messages. One instance owns one HTTP session; requests are numbered
// sequentially and sent one at a time.
type Client struct {
	*client.Client
	id         atomic.Int64
	mu         sync.Mutex
	connected  bool
	server     mcp.ResponseInitialize
	clientInfo mcp.ClientInfo
	tools      []*mcp.Tool // cached in server list order
}

// response wraps a JSON-RPC response envelope.
type response struct {
	mcp.Response
}

// Ensure response implements client.Unmarshaler
var _ client.Unmarshaler = (*response)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Servers may answer with either JSON or a single SSE frame
	mcpAccept = "application/json, text/event-stream"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given server URL, client info, and
// options. Credentials are passed through options (client.OptReqToken).
func New(url string, info mcp.ClientInfo, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	c.clientInfo = info

	// Set endpoint and user agent from client info
	defaults := []client.ClientOpt{
		client.OptEndpoint(url),
		client.OptUserAgent(info.Name + "/" + info.Version),
	}
	if httpClient, err := client.New(append(defaults, opts...)...); err != nil {
		return nil, err
	} else {
		c.Client = httpClient
	}
	return c, nil
}

// Connect performs the initialize handshake and discovers the server's
// tools. It is a no-op if the client is already connected.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	// Initialize the session. The capabilities member is always present,
	// even when empty.
	resp, err := c.doRPC(ctx, mcp.MessageTypeInitialize, mcp.RequestInitialize{
		Version:      mcp.ProtocolVersion,
		Capabilities: map[string]any{},
		ClientInfo:   c.clientInfo,
	})
	if err != nil {
		return err
	}

	// Decode the result into server info
	var server mcp.ResponseInitialize
	if resp.Result != nil {
		if err := decodeResult(resp.Result, &server); err != nil {
			return err
		}
	}

	// Discover tools before the session is usable
	if _, err := c.ListTools(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	c.server = server
	c.connected = true
	c.mu.Unlock()

	return nil
}

// Close ends the session and resets client state. It is a no-op if the
// client never connected.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	// Reset state
	c.connected = false
	c.server = mcp.ResponseInitialize{}
	c.tools = nil

	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ServerInfo returns the server information from the initialize handshake.
// Returns nil if the client has not yet connected.
func (c *Client) ServerInfo() *mcp.ResponseInitialize {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil
	}
	return &c.server
}

// Tools returns the tools discovered on connect, in server list order.
func (c *Client) Tools() []*mcp.Tool {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]*mcp.Tool, len(c.tools))
	copy(result, c.tools)
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// nextId returns the next JSON-RPC request ID.
func (c *Client) nextId() int64 {
	return c.id.Add(1)
}

// doRPC sends a single JSON-RPC request over HTTP POST and returns the
// decoded response. It fails on a non-success HTTP status or when the
// response carries an error member.
func (c *Client) doRPC(ctx context.Context, method string, params any) (*response, error) {
	req := mcp.Request{
		Version: mcp.RPCVersion,
		Method:  method,
		ID:      c.nextId(),
	}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		req.Payload = data
	}

	payload, err := client.NewJSONRequestEx(http.MethodPost, req, mcpAccept)
	if err != nil {
		return nil, err
	}

	var resp response
	if err := c.DoWithContext(ctx, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &resp, nil
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

func (r *response) Unmarshal(header http.Header, body io.Reader) error {
	// Event-stream bodies carry the payload in the data field of a single
	// frame. Extract it with the bounded helper rather than an
	// event-stream decoder.
	if ct := header.Get("Content-Type"); ct != "" {
		if mimetype, _, err := mime.ParseMediaType(ct); err == nil && mimetype == client.ContentTypeTextStream {
			data, err := extractEventData(body)
			if err != nil {
				return err
			}
			return json.Unmarshal(data, &r.Response)
		}
	}

	// Decode the JSON-RPC response
	return json.NewDecoder(body).Decode(&r.Response)
}
