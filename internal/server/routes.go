package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pwstrength/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/check", handler(s.postCheck))
		r.Post("/check/local", handler(s.postCheckLocal))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
