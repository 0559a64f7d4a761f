package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is returned when the backend responds with a non-2xx status and a
// JSON body. Message carries the body's "error" field.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "kino api error"
	}
	return e.Message
}

// ResponseKind classifies responses that could not be read as expected.
type ResponseKind int

const (
	// KindTransport is a non-2xx response without a JSON body, usually a proxy
	// or gateway failure.
	KindTransport ResponseKind = iota
	// KindContentType is a 2xx response that is not JSON.
	KindContentType
	// KindShape is JSON of the wrong shape, e.g. an object where a list was expected.
	KindShape
)

// ResponseError signals a misconfigured backend or a transport failure.
type ResponseError struct {
	Kind        ResponseKind
	StatusCode  int
	Endpoint    string
	ContentType string
	Detail      string
}

func (e *ResponseError) Error() string {
	if e == nil {
		return "unexpected response"
	}
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("Request failed (%d)", e.StatusCode)
	case KindShape:
		return fmt.Sprintf("API misconfigured: %s payload is not an array", e.Detail)
	default:
		return "API misconfigured: expected JSON response"
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func newAPIError(res *http.Response, endpoint string) *APIError {
	data, _ := io.ReadAll(io.LimitReader(res.Body, errorBodyLimit))
	message := fallbackMessage
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && strings.TrimSpace(body.Error) != "" {
		message = strings.TrimSpace(body.Error)
	}
	return &APIError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether the backend rejected the bearer token.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// Message extracts the text to show the user: the server message for API
// errors, the fixed description for response errors, and fallback otherwise.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Error()
	}
	if fallback == "" {
		return err.Error()
	}
	return fallback
}
