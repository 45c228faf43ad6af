package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Post("/api/users/reset-password/request", h.requestPasswordReset)
		r.Post("/api/users/reset-password/change", h.resetPasswordChange)

		// The refresh token authenticates this route by itself; the access
		// token middleware does not apply. Without a refresh signer the
		// route is absent and the path falls through to 404.
		if h.refreshEnabled {
			r.Patch("/api/users/token/regenerate", h.regenerate)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.me)
		r.Get("/api/users/logout", h.logOut)
		r.Patch("/api/users", h.update)
	})

	return router
}
