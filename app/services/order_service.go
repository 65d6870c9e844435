package services

import (
	"fmt"
	"time"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/app/repositories"
	"github.com/freshpress/freshpress/pkg/cache"
	"github.com/freshpress/freshpress/pkg/metrics"
)

const (
	statsCacheKey = "freshpress:dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

// CreateOrderRequest is the body of POST /orders, the flattened form of a
// client-side order draft.
type CreateOrderRequest struct {
	CustomerID   uint               `json:"customerId" validate:"required"`
	Notes        string             `json:"notes" validate:"nullable,max=500"`
	PickupDate   *time.Time         `json:"pickupDate"`
	DeliveryDate *time.Time         `json:"deliveryDate"`
	Items        []OrderItemRequest `json:"items" validate:"required"`
}

// OrderItemRequest is one line item of a creation request.
type OrderItemRequest struct {
	ServiceItemID uint   `json:"serviceItemId"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes"`
}

// DashboardStats is the summary block rendered on the dashboard.
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

type OrderService struct {
	orders    *repositories.OrderRepository
	customers *repositories.CustomerRepository
	catalog   *repositories.ServiceItemRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders:    repositories.NewOrderRepository(),
		customers: repositories.NewCustomerRepository(),
		catalog:   repositories.NewServiceItemRepository(),
	}
}

// List returns one page of orders plus the total count, optionally
// filtered by status.
func (s *OrderService) List(status models.OrderStatus, page, size int) ([]models.Order, int64, error) {
	return s.orders.List(status, page, size)
}

// Get loads a single order with its items.
func (s *OrderService) Get(id uint) (models.Order, error) {
	return s.orders.FindByID(id)
}

// Create builds an order from the request, pricing every line item from the
// catalog. Subtotals and the order total are computed here, never trusted
// from the client.
func (s *OrderService) Create(req CreateOrderRequest) (models.Order, error) {
	customer, err := s.customers.FindByID(req.CustomerID)
	if err != nil {
		return models.Order{}, fmt.Errorf("customer not found: %d", req.CustomerID)
	}

	order := models.Order{
		CustomerID:   customer.ID,
		Customer:     customer,
		Status:       models.StatusPending,
		PickupDate:   req.PickupDate,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
	}

	for _, itemReq := range req.Items {
		serviceItem, err := s.catalog.FindByID(itemReq.ServiceItemID)
		if err != nil {
			return models.Order{}, fmt.Errorf("service item not found: %d", itemReq.ServiceItemID)
		}
		if itemReq.Quantity < 1 {
			return models.Order{}, fmt.Errorf("quantity must be at least 1")
		}

		order.Items = append(order.Items, models.OrderItem{
			ServiceItemID: serviceItem.ID,
			ServiceItem:   serviceItem,
			Quantity:      itemReq.Quantity,
			Subtotal:      serviceItem.PricePerUnit * float64(itemReq.Quantity),
			Notes:         itemReq.Notes,
		})
	}

	order.RecalculateTotal()

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, fmt.Errorf("order: create: %w", err)
	}

	metrics.OrdersCreated.Inc()
	cache.Del(statsCacheKey) //nolint:errcheck

	return order, nil
}

// UpdateStatus moves an order to a new lifecycle state and returns the
// refreshed order.
func (s *OrderService) UpdateStatus(id uint, status models.OrderStatus) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, fmt.Errorf("order not found: %d", id)
	}

	order.Status = status
	if err := s.orders.Save(&order); err != nil {
		return models.Order{}, fmt.Errorf("order: save: %w", err)
	}

	cache.Del(statsCacheKey) //nolint:errcheck
	return order, nil
}

// Stats assembles the dashboard summary, served from Redis when warm.
func (s *OrderService) Stats() (DashboardStats, error) {
	var stats DashboardStats
	if cache.Get(statsCacheKey, &stats) {
		return stats, nil
	}

	totalOrders, err := s.orders.Count()
	if err != nil {
		return stats, fmt.Errorf("stats: count orders: %w", err)
	}
	totalCustomers, err := s.customers.Count()
	if err != nil {
		return stats, fmt.Errorf("stats: count customers: %w", err)
	}
	revenue, err := s.orders.TotalRevenue()
	if err != nil {
		return stats, fmt.Errorf("stats: revenue: %w", err)
	}

	breakdown := make(map[string]int64, len(models.OrderStatuses()))
	byStatus := make(map[models.OrderStatus]int64, len(models.OrderStatuses()))
	for _, status := range models.OrderStatuses() {
		count, err := s.orders.CountByStatus(status)
		if err != nil {
			return stats, fmt.Errorf("stats: count %s: %w", status, err)
		}
		breakdown[string(status)] = count
		byStatus[status] = count
	}

	stats = DashboardStats{
		TotalOrders:      totalOrders,
		TotalCustomers:   totalCustomers,
		TotalRevenue:     revenue,
		PendingOrders:    byStatus[models.StatusPending],
		ProcessingOrders: byStatus[models.StatusProcessing],
		ReadyOrders:      byStatus[models.StatusReady],
		DeliveredOrders:  byStatus[models.StatusDelivered],
		StatusBreakdown:  breakdown,
	}

	cache.Set(statsCacheKey, stats, statsCacheTTL) //nolint:errcheck
	return stats, nil
}
