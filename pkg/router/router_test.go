package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupPrefixing(t *testing.T) {
	r := New()
	api := r.Group("/api/v1")
	api.Get("/customers", "customers.index", ok)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNestedGroupMiddleware(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	api := r.Group("/api", mw("outer"))
	protected := api.Group("", mw("inner"))
	protected.Get("/x", "x", ok)

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestNamedRouteURL(t *testing.T) {
	r := New()
	api := r.Group("/api/v1")
	api.Get("/orders/{id}", "orders.show", ok)

	url, err := r.URL("orders.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/orders/42", url)

	_, err = r.URL("orders.show", nil)
	assert.Error(t, err, "missing params")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestRoutesSnapshot(t *testing.T) {
	r := New()
	api := r.Group("/api/v1")
	api.Get("/services", "services.index", ok)
	api.Post("/services", "services.create", ok)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "/api/v1/services", routes[0].Path)
	assert.Equal(t, "services.index", routes[0].Name)
}
