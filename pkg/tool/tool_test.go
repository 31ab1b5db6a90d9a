package tool_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tool "github.com/alloy-automation/alloy-mcp-go/pkg/tool"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string                        { return s.name }
func (s *stubTool) Description() string                 { return "stub" }
func (s *stubTool) Schema() (*jsonschema.Schema, error) { return nil, nil }
func (s *stubTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	return string(input), nil
}

type echoTool struct{}

func (e *echoTool) Name() string        { return "echo" }
func (e *echoTool) Description() string { return "echoes the name argument" }
func (e *echoTool) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
		},
		Required: []string{"name"},
	}, nil
}
func (e *echoTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	return req.Name, nil
}

func TestRegister_DottedName(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	if err := tk.Register(&stubTool{name: "connectivity.listIntegrations"}); err != nil {
		t.Fatal("dotted name should register:", err)
	}
}

func TestRegister_InvalidName(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"", "9tool", "connectivity..list", "bad name"} {
		if err := tk.Register(&stubTool{name: name}); err == nil {
			t.Fatal("expected error for name:", name)
		} else {
			t.Log("got expected error:", err)
		}
	}
}

func TestRegister_Duplicate(t *testing.T) {
	tk, err := tool.NewToolkit(&stubTool{name: "echo"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tk.Register(&stubTool{name: "echo"}); err == nil {
		t.Fatal("expected error when registering a duplicate name")
	} else {
		t.Log("got expected error:", err)
	}
}

func TestTools_Order(t *testing.T) {
	tk, err := tool.NewToolkit(
		&stubTool{name: "charlie"},
		&stubTool{name: "alpha"},
		&stubTool{name: "bravo"},
	)
	if err != nil {
		t.Fatal(err)
	}
	tools := tk.Tools()
	if len(tools) != 3 {
		t.Fatal("expected three tools, got", len(tools))
	}
	for i, name := range []string{"charlie", "alpha", "bravo"} {
		if tools[i].Name() != name {
			t.Fatalf("expected %q at position %d, got %q", name, i, tools[i].Name())
		}
	}
}

func TestLookup(t *testing.T) {
	tk, err := tool.NewToolkit(&stubTool{name: "echo"})
	if err != nil {
		t.Fatal(err)
	}
	if tk.Lookup("echo") == nil {
		t.Fatal("expected to find registered tool")
	}
	if tk.Lookup("missing") != nil {
		t.Fatal("expected nil for unknown tool")
	}
}

func TestRun_NotFound(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tk.Run(context.Background(), "missing", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	} else {
		t.Log("got expected error:", err)
	}
}

func TestRun_ValidInput(t *testing.T) {
	tk, err := tool.NewToolkit(new(echoTool))
	if err != nil {
		t.Fatal(err)
	}
	result, err := tk.Run(context.Background(), "echo", map[string]any{"name": "world"})
	if err != nil {
		t.Fatal(err)
	}
	if result != "world" {
		t.Fatal("unexpected result:", result)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	tk, err := tool.NewToolkit(new(echoTool))
	if err != nil {
		t.Fatal(err)
	}
	// The name argument is required by the schema
	if _, err := tk.Run(context.Background(), "echo", map[string]any{}); err == nil {
		t.Fatal("expected validation error")
	} else if !strings.Contains(err.Error(), "validation") {
		t.Fatal("unexpected error:", err)
	}
}

func TestRun_NilSchema(t *testing.T) {
	tk, err := tool.NewToolkit(&stubTool{name: "raw"})
	if err != nil {
		t.Fatal(err)
	}
	result, err := tk.Run(context.Background(), "raw", json.RawMessage(`{"anything": true}`))
	if err != nil {
		t.Fatal(err)
	}
	if result != `{"anything": true}` {
		t.Fatal("unexpected result:", result)
	}
}
