package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/invitehub/invitehub/internal/api/handler"
	"github.com/invitehub/invitehub/internal/api/middleware"
	"github.com/invitehub/invitehub/internal/invite"
	"github.com/invitehub/invitehub/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Repo     team.Repository
	Resolver *invite.Resolver
	Sender   invite.Sender
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	r.Get("/health", handler.NewHealthHandler(deps.Repo).ServeHTTP)
	r.Get("/", handler.NewAdminHandler().ServeHTTP)

	teamHandler := handler.NewTeamHandler(deps.Repo)
	r.Route("/api/teams", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		r.Post("/", teamHandler.Create)
		r.Delete("/{id}", teamHandler.Delete)
	})

	r.Post("/api/invite", handler.NewInviteHandler(deps.Resolver, deps.Sender).Send)
	r.Get("/api/config", handler.NewConfigHandler(deps.Resolver).Get)

	return r
}
