package connectivity

import (
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ListIntegrationsRequest struct {
	Limit    float64 `json:"limit,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Integration is an entry in the demonstration catalog
type Integration struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ListIntegrationsResponse struct {
	Integrations []Integration `json:"integrations"`
	Total        int           `json:"total"`
}

type CreateConnectionRequest struct {
	IntegrationId string         `json:"integrationId"`
	Name          string         `json:"name"`
	Config        map[string]any `json:"config,omitempty"`
}

// Connection is a fabricated connection record
type Connection struct {
	Id            string    `json:"id"`
	IntegrationId string    `json:"integrationId"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type GetDataRequest struct {
	ConnectionId string   `json:"connectionId"`
	Object       string   `json:"object"`
	Fields       []string `json:"fields,omitempty"`
	Limit        float64  `json:"limit,omitempty"`
}

type GetDataResponse struct {
	ConnectionId string           `json:"connectionId"`
	Object       string           `json:"object"`
	Records      []map[string]any `json:"records"`
	Count        int              `json:"count"`
}
