package model

import "encoding/json"

type APIError struct {
	Code    ErrorType       `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

type ResponseMeta struct {
	Total   int  `json:"total,omitempty"`
	Page    int  `json:"page,omitempty"`
	Limit   int  `json:"limit,omitempty"`
	HasMore bool `json:"has_more,omitempty"`
}

// APIResponse is the generic envelope used by the non-auth backend endpoints.
type APIResponse[T any] struct {
	Success bool          `json:"success"`
	Data    *T            `json:"data,omitempty"`
	Error   *APIError     `json:"error,omitempty"`
	Meta    *ResponseMeta `json:"meta,omitempty"`
}

type PaginatedResponse[T any] struct {
	Success bool         `json:"success"`
	Data    []T          `json:"data"`
	Error   *APIError    `json:"error,omitempty"`
	Meta    ResponseMeta `json:"meta"`
}
