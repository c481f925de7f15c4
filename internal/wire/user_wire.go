package wire

import (
	"order-management/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, handler *adaptor.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", handler.User.GetUsers)
		r.Post("/", handler.User.CreateUser)
		r.Get("/{id}", handler.User.GetUserByID)
		r.Put("/{id}", handler.User.UpdateUser)
		r.Delete("/{id}", handler.User.DeleteUser)
	})
}
