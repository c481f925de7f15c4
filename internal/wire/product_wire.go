package wire

import (
	"order-management/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, handler *adaptor.Handler) {
	// Products are scoped to the owning user for listing and creation.
	r.Get("/api/users/{id}/products", handler.Product.GetUserProducts)
	r.Post("/api/users/{id}/products", handler.Product.CreateProduct)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/{id}", handler.Product.GetProductByID)
		r.Put("/{id}", handler.Product.UpdateProduct)
		r.Delete("/{id}", handler.Product.DeleteProduct)
	})
}
