package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/handlers"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/realtime"
)

func RegisterWebSocketRoutes(router *mux.Router, hub *realtime.Hub, jwtSecret string) {
	wsHandler := handlers.NewWebSocketHandler(hub)

	wsRouter := router.PathPrefix("/ws").Subrouter()
	wsRouter.Use(middleware.AuthMiddleware(jwtSecret))
	wsRouter.HandleFunc("", wsHandler.HandleWebSocket).Methods(http.MethodGet)
}
