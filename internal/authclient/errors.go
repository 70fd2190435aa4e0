package authclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyResponse = errors.New("empty response from auth service")
	ErrInvalidToken  = errors.New("invalid access token")
)

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("auth service responded %d", e.StatusCode)
	}
	return fmt.Sprintf("auth service responded %d: %s", e.StatusCode, e.Detail)
}

// PublicMessage is the text safe to show to the user.
func (e *APIError) PublicMessage() string {
	return e.Detail
}

// parseDetail reads the "detail" field, which is either a string or a list
// of validation items.
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(eb.Detail, &text); err == nil {
		return text
	}
	var items []validationItem
	if err := json.Unmarshal(eb.Detail, &items); err != nil {
		return ""
	}
	msgs := make([]string, 0, len(items))
	for _, item := range items {
		if item.Msg != "" {
			msgs = append(msgs, strings.TrimPrefix(item.Msg, "Value error, "))
		}
	}
	return strings.Join(msgs, "; ")
}
