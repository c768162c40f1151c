// Package httputil renders JSON payloads and domain errors onto HTTP responses.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "residents/pkg/domain-errors"
)

// StatusError is the value of the "status" field on every error envelope.
const StatusError = "error"

// ErrorResponse is the JSON envelope for all failed requests.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the error envelope. Errors without a domain
// code, and internal errors, are rendered with a generic message so causes do
// not leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	if de, ok := dErrors.As(err); ok {
		status = dErrors.ToHTTPStatus(de.Code)
		if de.Code != dErrors.CodeInternal {
			message = de.Message
		}
	}
	WriteErrorMessage(w, status, message)
}

// WriteErrorMessage writes the error envelope with an explicit status.
func WriteErrorMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: StatusError, Message: message})
}
