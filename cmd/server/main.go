package main

import (
	"log"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/config"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/server"
)

// @title           Lipsanen Project Management API
// @version         1.0
// @description     API for construction project scheduling: projects, milestones, tasks, change proposals and the Last Planner grid.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
