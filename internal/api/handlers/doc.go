// Package handlers implements HTTP handlers for the sainto storefront API.
package handlers

import (
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// SearchData is the payload of a successful search response.
type SearchData struct {
	Products []domain.Product `json:"products"`
	HasMore  bool             `json:"hasMore"`
	Total    int              `json:"totalCount"`
	// Filters is null for sources that return no facet metadata.
	Filters *domain.FacetSet `json:"filters"`
}

// SearchEnvelope wraps every search response, success or failure.
type SearchEnvelope struct {
	Success bool        `json:"success"`
	Data    *SearchData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// envelopeError is a huma error whose body keeps the {success,error}
// envelope instead of an RFC 7807 problem document.
type envelopeError struct {
	status  int
	Success bool   `json:"success"`
	Message string `json:"error"`
}

func newEnvelopeError(status int, msg string) *envelopeError {
	return &envelopeError{status: status, Success: false, Message: msg}
}

func (e *envelopeError) Error() string { return e.Message }

func (e *envelopeError) GetStatus() int { return e.status }

func (*envelopeError) ContentType(string) string { return "application/json" }

// categoryError is a huma error matching the category response body shape,
// with empty products and the upstream error message.
type categoryError struct {
	status   int
	Products []domain.Product `json:"products"`
	HasMore  bool             `json:"hasMore"`
	Total    int              `json:"total"`
	Message  string           `json:"error"`
}

func newCategoryError(status int, msg string) *categoryError {
	return &categoryError{status: status, Products: []domain.Product{}, Message: msg}
}

func (e *categoryError) Error() string { return e.Message }

func (e *categoryError) GetStatus() int { return e.status }

func (*categoryError) ContentType(string) string { return "application/json" }
