package controllers

import (
	"net/http"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/app/repositories"
	"github.com/freshpress/freshpress/pkg/bind"
	"github.com/freshpress/freshpress/pkg/response"
)

// CreateCustomerRequest is the body of POST /customers and PUT /customers/{id}.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Email   string `json:"email" validate:"nullable,email"`
	Address string `json:"address" validate:"nullable,max=255"`
}

type CustomerController struct {
	customers *repositories.CustomerRepository
}

func NewCustomerController() *CustomerController {
	return &CustomerController{customers: repositories.NewCustomerRepository()}
}

// Index handles GET /customers?page&size&search.
func (c *CustomerController) Index(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 20)
	search := r.URL.Query().Get("search")

	customers, total, err := c.customers.Search(search, page, size)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, response.NewPage(customers, total, page, size))
}

// Show handles GET /customers/{id}.
func (c *CustomerController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Customer not found")
		return
	}

	customer, err := c.customers.FindByID(id)
	if err != nil {
		response.NotFound(w, "Customer not found")
		return
	}

	response.OK(w, customer)
}

// Create handles POST /customers.
func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs.Has() {
		response.ValidationError(w, errs)
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := c.customers.Create(&customer); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, customer)
}

// Update handles PUT /customers/{id}.
func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Customer not found")
		return
	}

	customer, err := c.customers.FindByID(id)
	if err != nil {
		response.NotFound(w, "Customer not found")
		return
	}

	var req CreateCustomerRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs.Has() {
		response.ValidationError(w, errs)
		return
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	if err := c.customers.Update(&customer); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, customer)
}
