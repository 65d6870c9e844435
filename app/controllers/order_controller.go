package controllers

import (
	"net/http"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/app/services"
	"github.com/freshpress/freshpress/pkg/bind"
	"github.com/freshpress/freshpress/pkg/logger"
	"github.com/freshpress/freshpress/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

// Index handles GET /orders?page&size&status.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 20)

	status := r.URL.Query().Get("status")
	if status != "" && !models.ValidOrderStatus(status) {
		response.Error(w, http.StatusBadRequest, "Unknown order status: "+status)
		return
	}

	orders, total, err := c.service.List(models.OrderStatus(status), page, size)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, response.NewPage(orders, total, page, size))
}

// Show handles GET /orders/{id}.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Order not found")
		return
	}

	order, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w, "Order not found")
		return
	}

	response.OK(w, order)
}

// Create handles POST /orders.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateOrderRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs.Has() {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Create(req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("order created",
		"order_id", order.ID, "customer_id", order.CustomerID, "total", order.TotalAmount)
	response.OK(w, order)
}

// UpdateStatus handles PATCH /orders/{id}/status.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Order not found")
		return
	}

	var body struct {
		Status string `json:"status" validate:"required"`
	}
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs.Has() {
		response.ValidationError(w, errs)
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		response.Error(w, http.StatusBadRequest, "Unknown order status: "+body.Status)
		return
	}

	order, err := c.service.UpdateStatus(id, models.OrderStatus(body.Status))
	if err != nil {
		response.Error(w, http.StatusNotFound, err.Error())
		return
	}

	response.OK(w, order)
}

// Stats handles GET /dashboard/stats.
func (c *OrderController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Stats()
	if err != nil {
		logger.WithCtx(r.Context()).Error("stats failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, stats)
}
