package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadmap-be/internal/bootstrap"
	"roadmap-be/internal/config"
	"roadmap-be/internal/server"
	"roadmap-be/internal/tracer"
	"roadmap-be/pkg/database"

	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(cfg.App)
	defer shutdownTracer(context.Background())

	level := logger.Info
	if cfg.IsProduction() {
		level = logger.Warn
	}
	gormDB, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection, level)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	if container.LlmResponderService != nil {
		log.Println("Background: Starting LLM Responder...")
		if err := container.LlmResponderService.Consume(context.Background()); err != nil {
			log.Printf("Background LLM Responder Error: %v", err)
		}
	}

	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := srv.Shutdown(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
