package wire

import (
	"order-management/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, handler *adaptor.Handler) {
	r.Get("/api/users/{id}/customers", handler.Customer.GetUserCustomers)
	r.Post("/api/users/{id}/customers", handler.Customer.CreateCustomer)

	r.Route("/api/customers", func(r chi.Router) {
		r.Get("/{id}", handler.Customer.GetCustomerByID)
		r.Put("/{id}", handler.Customer.UpdateCustomer)
		r.Delete("/{id}", handler.Customer.DeleteCustomer)
	})
}
