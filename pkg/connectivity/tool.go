package connectivity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
	tool "github.com/alloy-automation/alloy-mcp-go/pkg/tool"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	uuid "github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type listIntegrations struct{}

type createConnection struct{}

type getData struct{}

var _ tool.Tool = (*listIntegrations)(nil)
var _ tool.Tool = (*createConnection)(nil)
var _ tool.Tool = (*getData)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultListLimit = 10
	defaultDataLimit = 100
)

// The demonstration integration catalog. Results are fabricated; nothing
// here talks to a live system.
var catalog = []Integration{
	{Id: "salesforce", Name: "Salesforce", Category: "crm"},
	{Id: "hubspot", Name: "HubSpot", Category: "crm"},
	{Id: "pipedrive", Name: "Pipedrive", Category: "crm"},
	{Id: "mailchimp", Name: "Mailchimp", Category: "marketing"},
	{Id: "klaviyo", Name: "Klaviyo", Category: "marketing"},
	{Id: "shopify", Name: "Shopify", Category: "ecommerce"},
	{Id: "bigcommerce", Name: "BigCommerce", Category: "ecommerce"},
	{Id: "slack", Name: "Slack", Category: "communication"},
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the connectivity tools
func NewTools() []tool.Tool {
	return []tool.Tool{
		&listIntegrations{},
		&createConnection{},
		&getData{},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func integrationExists(id string) bool {
	for _, integration := range catalog {
		if integration.Id == id {
			return true
		}
	}
	return false
}

///////////////////////////////////////////////////////////////////////////////
// LIST INTEGRATIONS

func (*listIntegrations) Name() string {
	return "connectivity.listIntegrations"
}

func (*listIntegrations) Description() string {
	return "List available integrations in your workspace"
}

// Return the JSON schema for the tool input
func (*listIntegrations) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"limit":    {Type: "number", Default: json.RawMessage("10")},
			"category": {Type: "string", Enum: []any{"crm", "marketing", "ecommerce"}},
		},
	}, nil
}

// Run the tool with the given input
func (*listIntegrations) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req ListIntegrationsRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, alloy.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Apply defaults
	limit := int(req.Limit)
	if limit <= 0 {
		limit = defaultListLimit
	}

	// Filter by category, then apply the limit
	matched := make([]Integration, 0, len(catalog))
	for _, integration := range catalog {
		if req.Category == "" || integration.Category == req.Category {
			matched = append(matched, integration)
		}
	}
	total := len(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}

	return &ListIntegrationsResponse{
		Integrations: matched,
		Total:        total,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// CREATE CONNECTION

func (*createConnection) Name() string {
	return "connectivity.createConnection"
}

func (*createConnection) Description() string {
	return "Create a new connection to an integration"
}

// Return the JSON schema for the tool input
func (*createConnection) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"integrationId": {Type: "string"},
			"name":          {Type: "string"},
			"config":        {Type: "object"},
		},
		Required: []string{"integrationId", "name"},
	}, nil
}

// Run the tool with the given input
func (*createConnection) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req CreateConnectionRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, alloy.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.IntegrationId == "" {
		return nil, alloy.ErrBadParameter.With("integrationId is required")
	}
	if req.Name == "" {
		return nil, alloy.ErrBadParameter.With("name is required")
	}

	// The integration must exist in the catalog
	if !integrationExists(req.IntegrationId) {
		return nil, alloy.ErrNotFound.Withf("unknown integration: %q", req.IntegrationId)
	}

	return &Connection{
		Id:            "conn_" + uuid.NewString(),
		IntegrationId: req.IntegrationId,
		Name:          req.Name,
		Status:        "active",
		CreatedAt:     time.Now().UTC(),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// GET DATA

func (*getData) Name() string {
	return "connectivity.getData"
}

func (*getData) Description() string {
	return "Fetch data from a connected integration"
}

// Return the JSON schema for the tool input
func (*getData) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"connectionId": {Type: "string"},
			"object":       {Type: "string"},
			"fields":       {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"limit":        {Type: "number", Default: json.RawMessage("100")},
		},
		Required: []string{"connectionId", "object"},
	}, nil
}

// Run the tool with the given input
func (*getData) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req GetDataRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, alloy.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.ConnectionId == "" {
		return nil, alloy.ErrBadParameter.With("connectionId is required")
	}
	if req.Object == "" {
		return nil, alloy.ErrBadParameter.With("object is required")
	}

	// Apply defaults
	limit := int(req.Limit)
	if limit <= 0 {
		limit = defaultDataLimit
	}

	// Fabricate a few records with the requested fields
	count := min(limit, 3)
	records := make([]map[string]any, 0, count)
	for i := range count {
		record := map[string]any{
			"id": fmt.Sprintf("%s_%04d", strings.ToLower(req.Object), i+1),
		}
		for _, field := range req.Fields {
			record[field] = fmt.Sprintf("%s %d", field, i+1)
		}
		records = append(records, record)
	}

	return &GetDataResponse{
		ConnectionId: req.ConnectionId,
		Object:       req.Object,
		Records:      records,
		Count:        len(records),
	}, nil
}
