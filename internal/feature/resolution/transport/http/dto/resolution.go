// Package dto defines data transfer objects for the resolution HTTP API.
package dto

import "time"

// ResolveRequest is the body of POST /resolve.
type ResolveRequest struct {
	RawSymbol string `json:"raw_symbol" binding:"required"`
}

// ConfirmRequest is the body of POST /confirm.
type ConfirmRequest struct {
	RawSymbol string `json:"raw_symbol" binding:"required"`
	Ticker    string `json:"ticker" binding:"required"`
}

// CandidateItem is one proposed match in a resolution response.
type CandidateItem struct {
	Ticker string `json:"ticker"`
	Label  string `json:"label"`
	Score  int    `json:"score"`
}

// ResolutionResponse is the outcome of a resolve call.
type ResolutionResponse struct {
	State      string          `json:"state"`
	Ticker     string          `json:"ticker,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
	Candidates []CandidateItem `json:"candidates,omitempty"`
}

// MappingItem is one confirmed registry mapping in GET /mappings.
type MappingItem struct {
	RawSymbol  string    `json:"raw_symbol"`
	Ticker     string    `json:"ticker"`
	Source     string    `json:"source"`
	Confidence float64   `json:"confidence"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReferenceItem is one catalog row in GET /reference.
type ReferenceItem struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform success body for mutations without data.
type MessageResponse struct {
	Message string `json:"message"`
}
