package mcp

import (
	// Packages
	uitable "github.com/alloy-automation/alloy-mcp-go/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolTable implements table.TableData for a list of tool descriptors.
type ToolTable []*Tool

// ResourceTable implements table.TableData for a list of resources.
type ResourceTable []Resource

///////////////////////////////////////////////////////////////////////////////
// TOOL TABLE (LIST)

func (t ToolTable) Header() []string {
	return []string{"NAME", "DESCRIPTION"}
}

func (t ToolTable) Len() int {
	return len(t)
}

func (t ToolTable) Row(i int) []any {
	return []any{uitable.Bold{Value: t[i].Name}, t[i].Description}
}

///////////////////////////////////////////////////////////////////////////////
// RESOURCE TABLE (LIST)

func (t ResourceTable) Header() []string {
	return []string{"NAME", "URI"}
}

func (t ResourceTable) Len() int {
	return len(t)
}

func (t ResourceTable) Row(i int) []any {
	return []any{t[i].Name, t[i].URI}
}
