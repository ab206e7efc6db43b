package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/config"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/handlers"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	authService "github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/auth"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/users"
)

func RegisterAuthRoutes(router *mux.Router, jwtCfg config.JWTConfig) {
	authHandler := handlers.NewAuthHandler(authService.NewAuthService(jwtCfg))

	// Public routes without auth middleware.
	publicRouter := router.PathPrefix("/auth").Subrouter()
	publicRouter.Use(middleware.ResponseWrapperMiddleware)
	publicRouter.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	publicRouter.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
}

func RegisterUserRoutes(router *mux.Router, jwtSecret string) {
	profileService := users.NewProfileService()

	protectedRouter := router.PathPrefix("/user").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware(jwtSecret), middleware.ResponseWrapperMiddleware)
	protectedRouter.HandleFunc("/profile", profileService.GetUserProfile).Methods(http.MethodGet)
	protectedRouter.HandleFunc("/profile", profileService.UpdateUserProfile).Methods(http.MethodPut)
}
