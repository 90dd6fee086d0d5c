package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/campushq/placetrack/internal/common"
)

// defaultErrorMessage is used when no detail can be extracted from an error
// response body.
const defaultErrorMessage = "request failed"

// Error is a non-2xx backend response with its normalized detail message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// match with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// FieldError is one entry of a validation-error list as produced by the
// backend: a field path, a message, and an error type tag.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// String renders the entry as "path.to.field: message".
func (f FieldError) String() string {
	parts := make([]string, 0, len(f.Loc))
	for _, p := range f.Loc {
		// Numeric indices arrive as float64 from JSON; render them bare.
		if n, ok := p.(float64); ok && n == float64(int64(n)) {
			parts = append(parts, fmt.Sprintf("%d", int64(n)))
			continue
		}
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ".") + ": " + f.Msg
}

// errorFromResponse extracts the backend's error shape — a "detail" field
// holding either a plain string or a list of field-level validation errors —
// and normalizes it into one human-readable message.
func errorFromResponse(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode, Detail: defaultErrorMessage}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Detail) == 0 {
		return apiErr
	}

	var plain string
	if err := json.Unmarshal(envelope.Detail, &plain); err == nil {
		if plain != "" {
			apiErr.Detail = plain
		}
		return apiErr
	}

	var fields []FieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
		msgs := make([]string, len(fields))
		for i, f := range fields {
			msgs[i] = f.String()
		}
		apiErr.Detail = strings.Join(msgs, ", ")
		return apiErr
	}

	return apiErr
}
