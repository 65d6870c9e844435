package routes

import (
	"net/http"

	"github.com/freshpress/freshpress/app/controllers"
	"github.com/freshpress/freshpress/pkg/middleware"
	"github.com/freshpress/freshpress/pkg/response"
	"github.com/freshpress/freshpress/pkg/router"
)

// RegisterAPI mounts the /api/v1 surface. Auth endpoints are open; every
// other endpoint requires a bearer token.
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	customerController := controllers.NewCustomerController()
	orderController := controllers.NewOrderController()
	serviceController := controllers.NewServiceItemController()

	api := r.Group("/api/v1")

	api.Post("/auth/login", "auth.login", authController.Login)
	api.Post("/auth/register", "auth.register", authController.Register)

	protected := api.Group("", middleware.Auth)

	protected.Get("/dashboard/stats", "dashboard.stats", orderController.Stats)

	protected.Get("/customers", "customers.index", customerController.Index)
	protected.Post("/customers", "customers.create", customerController.Create)
	protected.Get("/customers/{id}", "customers.show", customerController.Show)
	protected.Put("/customers/{id}", "customers.update", customerController.Update)

	protected.Get("/orders", "orders.index", orderController.Index)
	protected.Post("/orders", "orders.create", orderController.Create)
	protected.Get("/orders/{id}", "orders.show", orderController.Show)
	protected.Patch("/orders/{id}/status", "orders.status", orderController.UpdateStatus)

	protected.Get("/services", "services.index", serviceController.Index)
	protected.Post("/services", "services.create", serviceController.Create)

	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})
}
