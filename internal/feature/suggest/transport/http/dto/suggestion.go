// Package dto defines data transfer objects for the suggest HTTP API.
package dto

// SuggestionItem is one type-ahead suggestion in the API response.
type SuggestionItem struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
