package embedded

import (
	"context"
	"encoding/json"
	"time"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
	tool "github.com/alloy-automation/alloy-mcp-go/pkg/tool"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	uuid "github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type createWorkflow struct{}

type executeWorkflow struct{}

var _ tool.Tool = (*createWorkflow)(nil)
var _ tool.Tool = (*executeWorkflow)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the embedded workflow tools
func NewTools() []tool.Tool {
	return []tool.Tool{
		&createWorkflow{},
		&executeWorkflow{},
	}
}

///////////////////////////////////////////////////////////////////////////////
// CREATE WORKFLOW

func (*createWorkflow) Name() string {
	return "embedded.createWorkflow"
}

func (*createWorkflow) Description() string {
	return "Create a new workflow definition"
}

// Return the JSON schema for the tool input
func (*createWorkflow) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":        {Type: "string"},
			"description": {Type: "string"},
			"steps":       {Type: "array"},
		},
		Required: []string{"name", "steps"},
	}, nil
}

// Run the tool with the given input
func (*createWorkflow) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req CreateWorkflowRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, alloy.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.Name == "" {
		return nil, alloy.ErrBadParameter.With("name is required")
	}
	if len(req.Steps) == 0 {
		return nil, alloy.ErrBadParameter.With("steps are required")
	}

	return &Workflow{
		Id:        "wf_" + uuid.NewString(),
		Name:      req.Name,
		Status:    "draft",
		StepCount: len(req.Steps),
		CreatedAt: time.Now().UTC(),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// EXECUTE WORKFLOW

func (*executeWorkflow) Name() string {
	return "embedded.executeWorkflow"
}

func (*executeWorkflow) Description() string {
	return "Execute a workflow"
}

// Return the JSON schema for the tool input
func (*executeWorkflow) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"workflowId": {Type: "string"},
			"context":    {Type: "object"},
		},
		Required: []string{"workflowId"},
	}, nil
}

// Run the tool with the given input
func (*executeWorkflow) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req ExecuteWorkflowRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, alloy.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.WorkflowId == "" {
		return nil, alloy.ErrBadParameter.With("workflowId is required")
	}

	return &Execution{
		ExecutionId: "exec_" + uuid.NewString(),
		WorkflowId:  req.WorkflowId,
		Status:      "running",
		StartedAt:   time.Now().UTC(),
	}, nil
}
