package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/database"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/handlers"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/realtime"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/repository"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/assignment"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/task"
)

func RegisterTaskRoutes(router *mux.Router, hub *realtime.Hub, jwtSecret string) {
	taskRepo := repository.NewTaskRepository(database.DB)
	historyRepo := repository.NewHistoryRepository(database.DB)
	directoryRepo := repository.NewDirectoryRepository(database.DB)

	taskHandler := handlers.NewTaskHandler(task.NewService(taskRepo))
	assignmentHandler := handlers.NewAssignmentHandler(
		assignment.NewService(taskRepo, historyRepo, directoryRepo, hub),
	)

	taskRouter := router.PathPrefix("/task").Subrouter()
	taskRouter.Use(middleware.AuthMiddleware(jwtSecret), middleware.ResponseWrapperMiddleware)
	taskRouter.HandleFunc("/create", taskHandler.Create).Methods(http.MethodPost)
	taskRouter.HandleFunc("/all", taskHandler.List).Methods(http.MethodGet)
	taskRouter.HandleFunc("/get/{id}", taskHandler.Get).Methods(http.MethodGet)

	taskRouter.HandleFunc("/{id}/assignment/preview", assignmentHandler.Preview).Methods(http.MethodPost)
	taskRouter.HandleFunc("/{id}/assignment", assignmentHandler.Assign).Methods(http.MethodPost)
	taskRouter.HandleFunc("/{id}/assignment", assignmentHandler.Unassign).Methods(http.MethodDelete)
	taskRouter.HandleFunc("/{id}/assignment/history", assignmentHandler.History).Methods(http.MethodGet)
}
