// Package httputil holds the JSON response helpers shared by all handlers.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/mrodriguezdev/mytineraries-api/internal/validate"
)

// ErrorItem is a single entry of the error envelope. Field is only set for
// validation failures.
type ErrorItem struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
}

// ErrorResponse is the error envelope every failure response uses:
// {"errors":[{"msg":"..."}]}.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a single-message error envelope.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Errors: []ErrorItem{{Msg: msg}}})
}

// FieldErrors writes a 422 envelope carrying one entry per failed field.
func FieldErrors(w http.ResponseWriter, fieldErrs []validate.FieldError) {
	items := make([]ErrorItem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		items = append(items, ErrorItem{Field: fe.Field, Msg: fe.Msg})
	}

	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Errors: items})
}
