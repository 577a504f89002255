package main

import (
	_ "taskflow/docs"
	"taskflow/internal/config"
	"taskflow/internal/server"

	log "github.com/sirupsen/logrus"
)

// @title           TaskFlow API
// @version         1.0
// @description     Task board for a single session.

// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("Server initialization failed: %v", err)
	}

	s.Run()
}
