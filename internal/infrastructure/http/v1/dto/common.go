// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import "github.com/shopspring/decimal"

// ErrorResponse is the body written by the error middleware.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
