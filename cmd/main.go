package main

import (
	"net/http"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/config"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/database"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/realtime"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/routes"
)

func main() {
	log := logger.NewLogger("teamtegrate")
	defer log.Sync()

	cfg := config.Load()

	if err := database.Init(cfg.Database); err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}

	hub := realtime.NewHub()
	go hub.Run()

	router := routes.RegisterAllRoutes(hub, cfg)

	addr := ":" + cfg.Server.HTTPPort
	log.Info("Server is running", "addr", addr, "env", cfg.Server.Environment)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
