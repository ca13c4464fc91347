// Package api - API types for quote evaluation
// These types define the contract for the /quotes endpoint.
package api

import (
	"github.com/shopspring/decimal"
)

// QuoteRequest is the input to POST /quotes
type QuoteRequest struct {
	// Kind is a service kind slug, e.g. "legal_consulting"
	Kind string `json:"kind"`

	// Name optionally labels the scenario
	Name string `json:"name,omitempty"`

	Description    string          `json:"description"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	Complexity     int             `json:"complexity"`
	Urgency        int             `json:"urgency"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`

	// Discounts are percentages to simulate
	Discounts []decimal.Decimal `json:"discounts,omitempty"`

	// Urgencies are hypothetical urgency levels to simulate
	Urgencies []int `json:"urgencies,omitempty"`

	// Mode overrides the server's input checking for this request
	Mode ValidationMode `json:"mode,omitempty"`
}

// ValidationMode controls strictness
type ValidationMode string

const (
	ModeDefault    ValidationMode = ""
	ModeStrict     ValidationMode = "strict"
	ModePermissive ValidationMode = "permissive"
)

// KindInfo describes a service kind in GET /kinds
type KindInfo struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine-readable code and a message
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
