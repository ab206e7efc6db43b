package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/database"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/handlers"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/repository"
)

func RegisterOrganizationRoutes(router *mux.Router, jwtSecret string) {
	orgHandler := handlers.NewOrganizationHandler(repository.NewDirectoryRepository(database.DB))

	orgRouter := router.PathPrefix("/organization").Subrouter()
	orgRouter.Use(middleware.AuthMiddleware(jwtSecret), middleware.ResponseWrapperMiddleware)
	orgRouter.HandleFunc("/users", orgHandler.ListUsers).Methods(http.MethodGet)
}
