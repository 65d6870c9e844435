package controllers

import (
	"net/http"

	"github.com/freshpress/freshpress/app/services"
	"github.com/freshpress/freshpress/pkg/bind"
	"github.com/freshpress/freshpress/pkg/response"
)

type ServiceItemController struct {
	service *services.CatalogService
}

func NewServiceItemController() *ServiceItemController {
	return &ServiceItemController{service: services.NewCatalogService()}
}

// Index handles GET /services. Returns a bare array, not a page.
func (c *ServiceItemController) Index(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, items)
}

// Create handles POST /services.
func (c *ServiceItemController) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateServiceRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs.Has() {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.service.Create(req)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, item)
}
