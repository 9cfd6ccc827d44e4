package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// HTTPError couples a status code with a stable error code.
type HTTPError struct {
	Status int
	Code   string
	Err    error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e HTTPError) Unwrap() error { return e.Err }

// ValidationError maps field names to problems.
type ValidationError map[string][]string

func (v ValidationError) Error() string { return "validation failed" }

func badRequest(err error) HTTPError {
	return HTTPError{Status: http.StatusBadRequest, Code: "bad_request", Err: err}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Data: data})
}

// writeError renders err, hiding internal error text from clients.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: "internal_error", Message: http.StatusText(status)}

	var valErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &valErr):
		status = http.StatusUnprocessableEntity
		detail = &ErrorDetail{Code: "validation_error", Message: valErr.Error(), Details: valErr}
	case errors.As(err, &httpErr):
		status = httpErr.Status
		detail = &ErrorDetail{Code: httpErr.Code, Message: http.StatusText(status)}
		if httpErr.Err != nil {
			detail.Message = httpErr.Err.Error()
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Error: detail})
}
