package wire

import (
	"order-management/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, handler *adaptor.Handler) {
	r.Get("/api/users/{id}/orders", handler.Order.GetUserOrders)
	r.Post("/api/users/{id}/orders", handler.Order.CreateOrder)

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/{id}", handler.Order.GetOrderByID)
		r.Delete("/{id}", handler.Order.DeleteOrder)
	})
}
