package client

import (
	// Packages
	mcp "github.com/alloy-automation/alloy-mcp-go/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Resource listing and reading return fixed demonstration data; nothing is
// fetched from the server.
var (
	demoResources = []mcp.Resource{
		{Name: "Integration Catalog", URI: "alloy://integrations"},
		{Name: "Workflow Templates", URI: "alloy://workflows/templates"},
		{Name: "Connection Health", URI: "alloy://connections/health"},
		{Name: "API Documentation", URI: "alloy://docs/api"},
		{Name: "Usage Analytics", URI: "alloy://analytics/usage"},
	}

	demoResourceContent = map[string]mcp.ResourceContent{
		"alloy://integrations": {
			Content: "Available integrations: Salesforce, HubSpot, Shopify, Slack, and 100+ more...",
			Type:    "text",
		},
		"alloy://workflows/templates": {
			Content: "Workflow templates for data sync, lead routing, customer onboarding...",
			Type:    "text",
		},
	}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Resources returns the available demonstration resources.
func (c *Client) Resources() []mcp.Resource {
	result := make([]mcp.Resource, len(demoResources))
	copy(result, demoResources)
	return result
}

// ReadResource returns the content of a demonstration resource. Unknown
// URIs return generic placeholder content rather than an error.
func (c *Client) ReadResource(uri string) mcp.ResourceContent {
	if content, exists := demoResourceContent[uri]; exists {
		return content
	}
	return mcp.ResourceContent{
		Content: "Resource content for " + uri,
		Type:    "text",
	}
}
