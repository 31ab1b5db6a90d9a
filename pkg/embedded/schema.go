package embedded

import (
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CreateWorkflowRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Trigger     map[string]any   `json:"trigger,omitempty"`
	Steps       []map[string]any `json:"steps"`
}

// Workflow is a fabricated workflow definition record
type Workflow struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	StepCount int       `json:"stepCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type ExecuteWorkflowRequest struct {
	WorkflowId string         `json:"workflowId"`
	Context    map[string]any `json:"context,omitempty"`
}

// Execution is a fabricated workflow execution record
type Execution struct {
	ExecutionId string    `json:"executionId"`
	WorkflowId  string    `json:"workflowId"`
	Status      string    `json:"status"`
	StartedAt   time.Time `json:"startedAt"`
}
