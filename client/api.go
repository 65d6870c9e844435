package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Wire types mirror the API's JSON contracts. Paged collections arrive in
// the {content, totalElements, ...} envelope; services is a bare array.

type AuthResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

type Customer struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerPage struct {
	Content       []Customer `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
}

type ServiceItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	PricePerUnit float64 `json:"pricePerUnit"`
	UnitType     string  `json:"unitType"`
}

type OrderItem struct {
	ID            uint        `json:"id"`
	ServiceItemID uint        `json:"serviceItemId"`
	ServiceItem   ServiceItem `json:"serviceItem"`
	Quantity      int         `json:"quantity"`
	Subtotal      float64     `json:"subtotal"`
}

type Order struct {
	ID           uint        `json:"id"`
	CustomerID   uint        `json:"customerId"`
	Customer     Customer    `json:"customer"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	PickupDate   *time.Time  `json:"pickupDate,omitempty"`
	DeliveryDate *time.Time  `json:"deliveryDate,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type OrderPage struct {
	Content       []Order `json:"content"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	Number        int     `json:"number"`
	Size          int     `json:"size"`
}

type DashboardStats struct {
	TotalOrders      int64            `json:"totalOrders"`
	TotalCustomers   int64            `json:"totalCustomers"`
	TotalRevenue     float64          `json:"totalRevenue"`
	PendingOrders    int64            `json:"pendingOrders"`
	ProcessingOrders int64            `json:"processingOrders"`
	ReadyOrders      int64            `json:"readyOrders"`
	DeliveredOrders  int64            `json:"deliveredOrders"`
	StatusBreakdown  map[string]int64 `json:"statusBreakdown"`
}

// Login authenticates with email and password. The returned token is not
// persisted automatically; call Session().SetToken once the caller decides
// to keep it.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out)
	return out, err
}

// Register creates a new admin account and returns its first token.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (AuthResponse, error) {
	body := map[string]string{"email": email, "password": password, "fullName": fullName}
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &out)
	return out, err
}

// Stats fetches the dashboard aggregates.
func (c *Client) Stats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &out)
	return out, err
}

// Customers lists customers one page at a time. search filters by name and
// is only sent when non-empty.
func (c *Client) Customers(ctx context.Context, page, size int, search string) (CustomerPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if search != "" {
		q.Set("search", search)
	}

	var out CustomerPage
	err := c.do(ctx, http.MethodGet, "/customers", q, nil, &out)
	return out, err
}

// CreateCustomerParams carries the fields for a new customer record.
// Name and Phone are required by the server.
type CreateCustomerParams struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (c *Client) CreateCustomer(ctx context.Context, params CreateCustomerParams) (Customer, error) {
	var out Customer
	err := c.do(ctx, http.MethodPost, "/customers", nil, params, &out)
	return out, err
}

// UpdateCustomer replaces the mutable fields of an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id uint, params CreateCustomerParams) (Customer, error) {
	var out Customer
	err := c.do(ctx, http.MethodPut, "/customers/"+strconv.FormatUint(uint64(id), 10), nil, params, &out)
	return out, err
}

// Orders lists orders newest first. status filters to one lifecycle state
// and is only sent when non-empty.
func (c *Client) Orders(ctx context.Context, page, size int, status string) (OrderPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if status != "" {
		q.Set("status", status)
	}

	var out OrderPage
	err := c.do(ctx, http.MethodGet, "/orders", q, nil, &out)
	return out, err
}

// Order fetches a single order with customer and line items.
func (c *Client) Order(ctx context.Context, id uint) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodGet, "/orders/"+strconv.FormatUint(uint64(id), 10), nil, nil, &out)
	return out, err
}

// CreateOrderParams is the payload for a new order. Pricing is server-side:
// items carry only service references and quantities.
type CreateOrderParams struct {
	CustomerID   uint              `json:"customerId"`
	Notes        string            `json:"notes,omitempty"`
	PickupDate   *time.Time        `json:"pickupDate,omitempty"`
	DeliveryDate *time.Time        `json:"deliveryDate,omitempty"`
	Items        []OrderItemParams `json:"items"`
}

type OrderItemParams struct {
	ServiceItemID uint `json:"serviceItemId"`
	Quantity      int  `json:"quantity"`
}

func (c *Client) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodPost, "/orders", nil, params, &out)
	return out, err
}

// UpdateOrderStatus moves an order to a new lifecycle state and returns
// the updated order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status string) (Order, error) {
	body := map[string]string{"status": status}
	var out Order
	err := c.do(ctx, http.MethodPatch, "/orders/"+strconv.FormatUint(uint64(id), 10)+"/status", nil, body, &out)
	return out, err
}

// Services fetches the full pricing catalog.
func (c *Client) Services(ctx context.Context) ([]ServiceItem, error) {
	var out []ServiceItem
	err := c.do(ctx, http.MethodGet, "/services", nil, nil, &out)
	return out, err
}

// CreateServiceParams defines a new catalog entry.
type CreateServiceParams struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	PricePerUnit float64 `json:"pricePerUnit"`
	UnitType     string  `json:"unitType"`
}

func (c *Client) CreateService(ctx context.Context, params CreateServiceParams) (ServiceItem, error) {
	var out ServiceItem
	err := c.do(ctx, http.MethodPost, "/services", nil, params, &out)
	return out, err
}
