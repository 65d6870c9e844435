// Package response writes the API's JSON wire shapes.
//
// Success responses carry the payload verbatim. Errors are either a plain
// {"message": "..."} or, for validation failures, the structured
// {"error": "Validation Failed", "fields": {...}} shape the admin client
// normalizes into a single user-facing message.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/freshpress/freshpress/pkg/validate"
)

// Page is the pagination envelope for list endpoints.
type Page struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
}

// NewPage assembles a Page from a content slice and paging inputs.
func NewPage(content interface{}, total int64, page, size int) Page {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page{
		Content:       content,
		TotalElements: total,
		TotalPages:    pages,
		Number:        page,
		Size:          size,
	}
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes a 200 response with v as the body.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Error writes {"message": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// ValidationError writes the 400 validation shape with field-level messages.
// Field order follows the order of the failing struct's declarations.
func ValidationError(w http.ResponseWriter, errs validate.Errors) {
	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "Validation Failed",
		"fields": errs,
	})
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "Not found"
	}
	Error(w, http.StatusNotFound, msg)
}
