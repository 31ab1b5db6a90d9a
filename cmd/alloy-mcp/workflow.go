package main

import (
	"fmt"
	"time"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
	workflow "github.com/alloy-automation/alloy-mcp-go/pkg/workflow"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type WorkflowCommand struct {
	Name  string        `arg:"" enum:"contact-sync,data-pipeline" help:"Workflow to run (contact-sync or data-pipeline)"`
	Delay time.Duration `name:"delay" default:"1s" help:"Delay between simulated workflow steps"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *WorkflowCommand) Run(g *Globals) error {
	fmt.Println("\n=== Workflow Demonstrations ===")

	if err := g.dial(); err != nil {
		return err
	}
	defer g.disconnect()

	executor, err := workflow.NewExecutor(g.client, workflow.WithDelay(cmd.Delay))
	if err != nil {
		return err
	}

	switch cmd.Name {
	case "contact-sync":
		return executor.ContactSync(g.ctx)
	case "data-pipeline":
		return executor.DataPipeline(g.ctx)
	}
	return alloy.ErrBadParameter.With(cmd.Name)
}
