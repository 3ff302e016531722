package noroff

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the upstream API
type APIError struct {
	StatusCode int
	Status     string
	Messages   []string
}

type errorBody struct {
	Errors []struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
		Path    []any  `json:"path,omitempty"`
	} `json:"errors"`
	Message string `json:"message"`
}

func newAPIError(res *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: res.StatusCode,
		Status:     statusText(res),
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	for _, e := range parsed.Errors {
		if e.Message != "" {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
	}
	if len(apiErr.Messages) == 0 && parsed.Message != "" {
		apiErr.Messages = []string{parsed.Message}
	}

	return apiErr
}

// statusText returns "Not Found" rather than "404 Not Found"
func statusText(res *http.Response) string {
	if text := http.StatusText(res.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(res.Status, http.StatusText(res.StatusCode)))
}

// Message joins the upstream error messages, falling back to the status text
func (e *APIError) Message() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}
	return e.Status
}

func (e *APIError) Error() string {
	return "Error: " + e.Message()
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
