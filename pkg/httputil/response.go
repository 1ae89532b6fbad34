package httputil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/matzehuels/whisker/pkg/errors"
)

// ErrorBody is the JSON shape of an error response.
type ErrorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an ErrorBody and returns the status used.
// Errors without a code are reported as internal errors with a generic
// message.
func WriteError(w http.ResponseWriter, err error) int {
	status := StatusFor(err)
	body := ErrorBody{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	if body.Code == "" {
		body = ErrorBody{Code: errors.ErrCodeInternal, Message: http.StatusText(status)}
	}
	WriteJSON(w, status, body)
	return status
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidExpression, errors.ErrCodeInvalidColor:
		return http.StatusBadRequest
	case errors.ErrCodeAllocationFailed:
		return http.StatusRequestEntityTooLarge
	case errors.ErrCodeInvalidDocument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ETag quotes a fingerprint for use in an ETag header.
func ETag(fingerprint string) string {
	return `"` + fingerprint + `"`
}

// NotModified sets the ETag header and reports whether the request's
// If-None-Match already names it. Callers should then reply 304 with no
// body.
func NotModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("ETag", etag)
	for _, candidate := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == etag || candidate == "*" {
			return true
		}
	}
	return false
}
