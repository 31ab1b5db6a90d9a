package mcp

import "github.com/alloy-automation/alloy-mcp-go/pkg/tool"

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Server) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (server *Server) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return err
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithToolKit sets the toolkit the server dispatches tool calls to
func WithToolKit(v *tool.Toolkit) Opt {
	return func(server *Server) error {
		server.toolkit = v
		return nil
	}
}

// WithToken requires requests to carry the given bearer token
func WithToken(v string) Opt {
	return func(server *Server) error {
		server.token = v
		return nil
	}
}

// WithEventStream makes the server answer each request with a single
// server-sent event frame instead of a plain JSON body
func WithEventStream() Opt {
	return func(server *Server) error {
		server.stream = true
		return nil
	}
}
