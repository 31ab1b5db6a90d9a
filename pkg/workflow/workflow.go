package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
	connectivity "github.com/alloy-automation/alloy-mcp-go/pkg/connectivity"
	embedded "github.com/alloy-automation/alloy-mcp-go/pkg/embedded"
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
	client "github.com/alloy-automation/alloy-mcp-go/pkg/mcp/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Executor runs fixed multi-step tool sequences against a connected client,
// printing progress as it goes. Sequences are linear; a failed step aborts
// the rest.
type Executor struct {
	client *client.Client
	w      io.Writer
	delay  time.Duration // presentational pause between simulated steps
}

type contact struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var simulatedContacts = []contact{
	{Email: "john@example.com", FirstName: "John", LastName: "Doe", Phone: "555-1234"},
	{Email: "jane@example.com", FirstName: "Jane", LastName: "Smith", Phone: "555-5678"},
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewExecutor creates an executor for the given connected client.
func NewExecutor(c *client.Client, opts ...Opt) (*Executor, error) {
	if c == nil {
		return nil, alloy.ErrBadParameter.With("client is required")
	}
	e := &Executor{
		client: c,
		w:      os.Stdout,
		delay:  time.Second,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ContactSync lists integrations, creates a source and target connection,
// fetches contacts from the source and simulates syncing them across.
func (e *Executor) ContactSync(ctx context.Context) error {
	fmt.Fprintln(e.w, "\n=== Starting Contact Sync Workflow ===")

	// Step 1: list available integrations
	if _, err := e.call(ctx, "connectivity.listIntegrations", map[string]any{
		"limit":           10,
		"includeMetadata": true,
	}); err != nil {
		return err
	}

	// Step 2: create source and target connections
	source, err := e.call(ctx, "connectivity.createConnection", map[string]any{
		"integrationId": "salesforce",
		"name":          "Salesforce Production",
		"config": map[string]any{
			"instanceUrl": "https://mycompany.salesforce.com",
			"apiVersion":  "v59.0",
		},
	})
	if err != nil {
		return err
	}
	if _, err := e.call(ctx, "connectivity.createConnection", map[string]any{
		"integrationId": "hubspot",
		"name":          "HubSpot Main",
		"config": map[string]any{
			"portalId": "123456",
		},
	}); err != nil {
		return err
	}

	var conn connectivity.Connection
	if err := source.Decode(&conn); err != nil {
		return err
	}

	// Step 3: fetch contacts from the source
	if _, err := e.call(ctx, "connectivity.getData", map[string]any{
		"connectionId": conn.Id,
		"object":       "Contact",
		"fields":       []string{"FirstName", "LastName", "Email", "Phone"},
		"limit":        100,
	}); err != nil {
		return err
	}

	// Step 4: transform and send to the target (simulated)
	fmt.Fprintln(e.w, "Processing contact data...")
	for _, contact := range simulatedContacts {
		fmt.Fprintf(e.w, "Syncing contact: %s %s\n", contact.FirstName, contact.LastName)
		if err := e.sleep(ctx, e.delay/2); err != nil {
			return err
		}
	}

	fmt.Fprintln(e.w, "Contact sync workflow completed")
	return nil
}

// DataPipeline creates a scheduled extract-transform-load workflow,
// executes it and simulates monitoring the execution to completion.
func (e *Executor) DataPipeline(ctx context.Context) error {
	fmt.Fprintln(e.w, "\n=== Starting Data Pipeline Workflow ===")

	// Create a workflow definition
	created, err := e.call(ctx, "embedded.createWorkflow", map[string]any{
		"name":        "Daily Data Pipeline",
		"description": "Process and transform daily data",
		"trigger": map[string]any{
			"type":     "schedule",
			"schedule": "0 9 * * *",
		},
		"steps": []map[string]any{
			{
				"id":   "extract",
				"type": "extract",
				"config": map[string]any{
					"source": "database",
					"query":  "SELECT * FROM orders WHERE date >= CURRENT_DATE - 1",
				},
			},
			{
				"id":   "transform",
				"type": "transform",
				"config": map[string]any{
					"operations": []map[string]any{
						{"type": "filter", "condition": "amount > 100"},
						{"type": "aggregate", "groupBy": "customer_id", "sum": "amount"},
					},
				},
			},
			{
				"id":   "load",
				"type": "load",
				"config": map[string]any{
					"destination": "warehouse",
					"table":       "daily_summary",
				},
			},
		},
	})
	if err != nil {
		return err
	}

	var workflow embedded.Workflow
	if err := created.Decode(&workflow); err != nil {
		return err
	}

	// Execute the workflow
	executed, err := e.call(ctx, "embedded.executeWorkflow", map[string]any{
		"workflowId": workflow.Id,
		"context":    map[string]any{"debug": true},
	})
	if err != nil {
		return err
	}

	var execution embedded.Execution
	if err := executed.Decode(&execution); err != nil {
		return err
	}

	// Monitor execution (simulated)
	fmt.Fprintln(e.w, "Execution started:", execution.ExecutionId)
	for _, status := range []string{"running", "processing", "finalizing", "completed"} {
		fmt.Fprintln(e.w, "Status:", status)
		if err := e.sleep(ctx, e.delay); err != nil {
			return err
		}
	}

	fmt.Fprintln(e.w, "Data pipeline workflow completed")
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// call executes one tool and converts a reported failure into an error
// which aborts the sequence.
func (e *Executor) call(ctx context.Context, name string, args map[string]any) (*mcp.ToolResult, error) {
	fmt.Fprintln(e.w, "Executing tool:", name)
	result, err := e.client.ExecuteTool(ctx, name, args)
	if err != nil {
		return nil, err
	}
	if result.IsError {
		return nil, fmt.Errorf("tool %s failed: %s", name, result.Text())
	}
	return result, nil
}

// sleep pauses between simulated steps, returning early if the context is
// cancelled. A zero delay skips the pause.
func (e *Executor) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
