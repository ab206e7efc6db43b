package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/team"
)

func RegisterTeamRoutes(router *mux.Router, jwtSecret string) {
	teamService := team.NewTeamService()

	teamRouter := router.PathPrefix("/team").Subrouter()
	teamRouter.Use(middleware.AuthMiddleware(jwtSecret), middleware.ResponseWrapperMiddleware)
	teamRouter.HandleFunc("/create", teamService.CreateTeam).Methods(http.MethodPost)
	teamRouter.HandleFunc("/all", teamService.GetOrganizationTeams).Methods(http.MethodGet)
	teamRouter.HandleFunc("/get/{id}", teamService.GetTeam).Methods(http.MethodGet)
	teamRouter.HandleFunc("/{id}/members", teamService.GetTeamMembers).Methods(http.MethodGet)
}
