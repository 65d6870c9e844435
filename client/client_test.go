package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	return s
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	session := newTestSession(t)
	c := New(srv.URL, session)

	_, err := c.Services(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no token, no Authorization header")

	require.NoError(t, session.SetToken("tok-1"))
	_, err = c.Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestClientValidationErrorUsesFirstField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Validation Failed","fields":{"phone":"The phone field is required.","email":"The email must be a valid email address."}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	_, err := c.CreateCustomer(context.Background(), CreateCustomerParams{Name: "Ada"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "The phone field is required.", apiErr.Message)
	require.Len(t, apiErr.Fields, 2)
	assert.Equal(t, "phone", apiErr.Fields[0].Field)
	assert.Equal(t, "email", apiErr.Fields[1].Field)
}

func TestClientMessageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid email or password", apiErr.Message)
	assert.Empty(t, apiErr.Fields)
}

func TestClientGenericFallbackOnUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	_, err := c.Stats(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Request failed: 500", apiErr.Message)
}

func TestClientOrdersQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[],"totalElements":0,"totalPages":0,"number":0,"size":10}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	_, err := c.Orders(context.Background(), 2, 25, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"25"}, gotQuery["size"])
	assert.NotContains(t, gotQuery, "status", "empty status filter is not sent")

	_, err = c.Orders(context.Background(), 0, 10, "PENDING")
	require.NoError(t, err)
	assert.Equal(t, []string{"PENDING"}, gotQuery["status"])
}

func TestClientCustomersSearchParam(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[],"totalElements":0,"totalPages":0,"number":0,"size":10}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	_, err := c.Customers(context.Background(), 0, 10, "")
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "search")

	_, err = c.Customers(context.Background(), 0, 10, "amara")
	require.NoError(t, err)
	assert.Equal(t, []string{"amara"}, gotQuery["search"])
}

func TestClientDecodesPagedOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content":[{"id":7,"customerId":1,"customer":{"id":1,"name":"Amara Okafor"},"status":"PROCESSING","totalAmount":10500,"items":[{"id":1,"serviceItemId":1,"quantity":3,"subtotal":4500,"serviceItem":{"id":1,"name":"Wash & Fold","pricePerUnit":1500}}]}],
			"totalElements":1,"totalPages":1,"number":0,"size":10
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	page, err := c.Orders(context.Background(), 0, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	order := page.Content[0]
	assert.Equal(t, uint(7), order.ID)
	assert.Equal(t, "Amara Okafor", order.Customer.Name)
	assert.Equal(t, "PROCESSING", order.Status)
	assert.InDelta(t, 10500, order.TotalAmount, 0.001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "Wash & Fold", order.Items[0].ServiceItem.Name)
}

func TestDecodeOrderedFieldsPreservesDocumentOrder(t *testing.T) {
	raw := []byte(`{"z":"last wins nothing","a":"first","m":"middle"}`)

	fields, err := decodeOrderedFields(raw)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "z", fields[0].Field)
	assert.Equal(t, "a", fields[1].Field)
	assert.Equal(t, "m", fields[2].Field)
}

func TestClientLoginDoesNotPersistToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"jwt-abc","email":"admin@freshpress.com","role":"ADMIN","fullName":"Goodness Mbakara"}`))
	}))
	defer srv.Close()

	session := newTestSession(t)
	c := New(srv.URL, session)

	resp, err := c.Login(context.Background(), "admin@freshpress.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", resp.Token)
	assert.Empty(t, session.Token(), "login returns the token, the caller decides to persist it")
}
