package seoapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error represents a non-2xx answer from the SEO backend.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%d] %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// AsError returns the backend error wrapped in err, if any. A false result
// means the request never got an HTTP answer (transport failure, timeout,
// cancelled context, undecodable body).
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound returns true if the error is a 404 Not Found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsBadRequest returns true if the error is a 400 Bad Request error.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

// IsConflict returns true if the error is a 409 Conflict error.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, status int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.StatusCode == status
}

// parseError builds an Error from an error response body. The backend
// answers {"error": "text"}; the {"error": {"message": "text"}} envelope
// is accepted as well, anything else is kept as plain text.
func parseError(status int, body []byte) *Error {
	var flat struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Error != "" {
		return &Error{StatusCode: status, Message: flat.Error}
	}

	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &nested); err == nil && nested.Error.Message != "" {
		return &Error{StatusCode: status, Message: nested.Error.Message}
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "<") {
		// HTML error pages from proxies are not worth showing to visitors
		text = ""
	}
	return &Error{StatusCode: status, Message: text}
}
