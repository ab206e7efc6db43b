package routes

import (
	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/config"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/realtime"
)

// RegisterAllRoutes builds the full router. Route modules construct their own
// services against the shared database handle.
func RegisterAllRoutes(hub *realtime.Hub, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	RegisterAuthRoutes(router, cfg.JWT)
	RegisterUserRoutes(router, cfg.JWT.Secret)
	RegisterOrganizationRoutes(router, cfg.JWT.Secret)
	RegisterTeamRoutes(router, cfg.JWT.Secret)
	RegisterTaskRoutes(router, hub, cfg.JWT.Secret)
	RegisterWebSocketRoutes(router, hub, cfg.JWT.Secret)

	return router
}
