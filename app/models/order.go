package models

import "time"

// OrderStatus is the server-authoritative order lifecycle state.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusPickedUp   OrderStatus = "PICKED_UP"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusReady      OrderStatus = "READY"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses lists every status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending, StatusPickedUp, StatusProcessing,
		StatusReady, StatusDelivered, StatusCancelled,
	}
}

// ValidOrderStatus reports whether s names a known status.
func ValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses() {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Order is a laundry order with its line items. The total is always
// recomputed server-side from item subtotals.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerID   uint        `gorm:"not null;index" json:"customerId"`
	Customer     Customer    `json:"customer"`
	Status       OrderStatus `gorm:"size:20;not null;default:PENDING" json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	PickupDate   *time.Time  `json:"pickupDate"`
	DeliveryDate *time.Time  `json:"deliveryDate"`
	Notes        string      `gorm:"size:500" json:"notes"`
	Items        []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// OrderItem is one (service, quantity) line within an order.
type OrderItem struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderID       uint        `gorm:"not null;index" json:"-"`
	ServiceItemID uint        `gorm:"not null" json:"serviceItemId"`
	ServiceItem   ServiceItem `json:"serviceItem"`
	Quantity      int         `gorm:"not null" json:"quantity"`
	Subtotal      float64     `gorm:"not null" json:"subtotal"`
	Notes         string      `json:"notes"`
}

// RecalculateTotal sums the item subtotals into TotalAmount.
func (o *Order) RecalculateTotal() {
	total := 0.0
	for _, item := range o.Items {
		total += item.Subtotal
	}
	o.TotalAmount = total
}
