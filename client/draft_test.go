package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderDraftStartsWithOneBlankItem(t *testing.T) {
	d := NewOrderDraft()

	require.Len(t, d.Items, 1)
	assert.Empty(t, d.Items[0].ServiceItemID)
	assert.Equal(t, 1, d.Items[0].Quantity)
}

func TestDraftAddItemDefaultsQuantityToOne(t *testing.T) {
	d := &OrderDraft{}

	d.AddItem()
	d.AddItem()

	require.Len(t, d.Items, 2)
	assert.Equal(t, 1, d.Items[0].Quantity)
	assert.Equal(t, 1, d.Items[1].Quantity)
}

func TestDraftUpdateItemQuantityCoercion(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"5", 5},
		{"1", 1},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"2.5", 1},
		{"12", 12},
	}

	for _, tc := range cases {
		d := NewOrderDraft()
		require.NoError(t, d.UpdateItem(0, ItemFieldQuantity, tc.input))
		assert.Equal(t, tc.want, d.Items[0].Quantity, "input %q", tc.input)
	}
}

func TestDraftUpdateItemService(t *testing.T) {
	d := NewOrderDraft()

	require.NoError(t, d.UpdateItem(0, ItemFieldService, "3"))
	assert.Equal(t, "3", d.Items[0].ServiceItemID)

	assert.Error(t, d.UpdateItem(5, ItemFieldService, "3"), "out of range index")
	assert.Error(t, d.UpdateItem(0, "color", "red"), "unknown field")
}

func TestDraftRemoveItem(t *testing.T) {
	d := NewOrderDraft()
	d.AddItem()
	require.NoError(t, d.UpdateItem(1, ItemFieldService, "9"))

	d.RemoveItem(0)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "9", d.Items[0].ServiceItemID)

	d.RemoveItem(42)
	assert.Len(t, d.Items, 1)
}

func TestDraftSubmitRejectsEmptyBeforeAnyRequest(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	d := &OrderDraft{CustomerID: "1"}
	_, err := d.Submit(context.Background(), c)
	assert.ErrorIs(t, err, ErrNoItems)

	d = NewOrderDraft()
	d.CustomerID = ""
	_, err = d.Submit(context.Background(), c)
	assert.ErrorIs(t, err, ErrNoCustomer)

	d = NewOrderDraft()
	d.CustomerID = "1"
	_, err = d.Submit(context.Background(), c)
	assert.Error(t, err, "blank item has no service selected")

	assert.Zero(t, requests, "validation failures never reach the server")
}

func TestDraftSubmitPostsAndResets(t *testing.T) {
	var got CreateOrderParams
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":12,"customerId":1,"status":"PENDING","totalAmount":7500,"items":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	d := &OrderDraft{CustomerID: "1", Notes: "silk items"}
	d.AddItem()
	require.NoError(t, d.UpdateItem(0, ItemFieldService, "2"))
	require.NoError(t, d.UpdateItem(0, ItemFieldQuantity, "5"))

	order, err := d.Submit(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, uint(12), order.ID)

	assert.Equal(t, uint(1), got.CustomerID)
	assert.Equal(t, "silk items", got.Notes)
	require.Len(t, got.Items, 1)
	assert.Equal(t, uint(2), got.Items[0].ServiceItemID)
	assert.Equal(t, 5, got.Items[0].Quantity)

	// Success resets the draft to its initial state.
	assert.Empty(t, d.CustomerID)
	assert.Empty(t, d.Notes)
	require.Len(t, d.Items, 1)
	assert.Empty(t, d.Items[0].ServiceItemID)
	assert.Equal(t, 1, d.Items[0].Quantity)
}

func TestDraftSubmitKeepsStateOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Validation Failed","fields":{"customerId":"The customerId field is required."}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))

	d := &OrderDraft{CustomerID: "1"}
	d.AddItem()
	require.NoError(t, d.UpdateItem(0, ItemFieldService, "2"))

	_, err := d.Submit(context.Background(), c)
	require.Error(t, err)

	assert.Equal(t, "1", d.CustomerID, "failed submit keeps the draft for correction")
	assert.Len(t, d.Items, 1)
}
