package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshpress/freshpress/pkg/validate"
)

func TestValidationErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationError(rec, validate.Errors{
		{Field: "phone", Message: "The phone field is required."},
		{Field: "email", Message: "The email must be a valid email address."},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"error":"Validation Failed","fields":{"phone":"The phone field is required.","email":"The email must be a valid email address."}}`,
		rec.Body.String())
}

func TestErrorWritesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusConflict, "email already registered")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"email already registered"}`, rec.Body.String())
}

func TestNewPage(t *testing.T) {
	p := NewPage([]string{"a", "b"}, 25, 1, 10)

	assert.Equal(t, int64(25), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 10, p.Size)
}

func TestNewPageZeroSize(t *testing.T) {
	p := NewPage([]string{}, 0, 0, 0)
	assert.Equal(t, 0, p.TotalPages)
}

func TestNotFoundDefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())
}
