package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Draft field names accepted by UpdateItem.
const (
	ItemFieldService  = "serviceItemId"
	ItemFieldQuantity = "quantity"
)

var (
	// ErrNoItems is returned by Submit when the draft has no line items.
	ErrNoItems = errors.New("order draft: at least one item is required")

	// ErrNoCustomer is returned by Submit when no customer is selected.
	ErrNoCustomer = errors.New("order draft: a customer must be selected")
)

// DraftItem is one line item under composition. Fields hold raw string
// input so callers can bind form or flag values directly; coercion to the
// wire types happens in UpdateItem and Submit.
type DraftItem struct {
	ServiceItemID string
	Quantity      int
}

// OrderDraft accumulates the state of an order being composed before it is
// submitted. It enforces the composition rules: new items default to
// quantity 1, malformed quantity input is coerced to 1 rather than
// rejected, and submission refuses to dispatch a request with no items.
type OrderDraft struct {
	CustomerID   string
	Notes        string
	PickupDate   *time.Time
	DeliveryDate *time.Time
	Items        []DraftItem
}

// NewOrderDraft returns a draft with a single blank item, matching the
// initial state of the order form.
func NewOrderDraft() *OrderDraft {
	return &OrderDraft{Items: []DraftItem{{Quantity: 1}}}
}

// AddItem appends a blank line item with quantity 1.
func (d *OrderDraft) AddItem() {
	d.Items = append(d.Items, DraftItem{Quantity: 1})
}

// RemoveItem deletes the line item at index. Out-of-range indexes are
// ignored.
func (d *OrderDraft) RemoveItem(index int) {
	if index < 0 || index >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
}

// UpdateItem sets one field of the line item at index from raw input.
// Quantity input that does not parse as a positive integer is coerced
// to 1 so a half-typed value never produces an invalid line.
func (d *OrderDraft) UpdateItem(index int, field, value string) error {
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("order draft: no item at index %d", index)
	}

	switch field {
	case ItemFieldService:
		d.Items[index].ServiceItemID = value
	case ItemFieldQuantity:
		d.Items[index].Quantity = coerceQuantity(value)
	default:
		return fmt.Errorf("order draft: unknown item field %q", field)
	}
	return nil
}

func coerceQuantity(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Submit validates the draft, dispatches the create request and, on
// success, resets the draft to its initial state. Validation failures are
// reported before any request is sent.
func (d *OrderDraft) Submit(ctx context.Context, c *Client) (Order, error) {
	if len(d.Items) == 0 {
		return Order{}, ErrNoItems
	}
	if d.CustomerID == "" {
		return Order{}, ErrNoCustomer
	}

	customerID, err := strconv.ParseUint(d.CustomerID, 10, 64)
	if err != nil {
		return Order{}, fmt.Errorf("order draft: invalid customer id %q", d.CustomerID)
	}

	params := CreateOrderParams{
		CustomerID:   uint(customerID),
		Notes:        d.Notes,
		PickupDate:   d.PickupDate,
		DeliveryDate: d.DeliveryDate,
		Items:        make([]OrderItemParams, 0, len(d.Items)),
	}
	for i, item := range d.Items {
		if item.ServiceItemID == "" {
			return Order{}, fmt.Errorf("order draft: item %d has no service selected", i+1)
		}
		serviceID, err := strconv.ParseUint(item.ServiceItemID, 10, 64)
		if err != nil {
			return Order{}, fmt.Errorf("order draft: item %d has invalid service id %q", i+1, item.ServiceItemID)
		}
		params.Items = append(params.Items, OrderItemParams{
			ServiceItemID: uint(serviceID),
			Quantity:      item.Quantity,
		})
	}

	order, err := c.CreateOrder(ctx, params)
	if err != nil {
		return Order{}, err
	}

	d.Reset()
	return order, nil
}

// Reset returns the draft to its initial state: no customer, no notes,
// one blank item.
func (d *OrderDraft) Reset() {
	*d = OrderDraft{Items: []DraftItem{{Quantity: 1}}}
}
