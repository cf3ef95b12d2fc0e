package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutriplan/internal/app"
	"nutriplan/internal/config"
	"nutriplan/internal/transport/rest"
	"nutriplan/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer application.Close(ctx)
	log.Println("Connected to MongoDB and Redis")

	// WebSocket hub pushes a fresh view to the renderer after every event
	wsHub := ws.NewHub()
	application.SessionService.SetBroadcaster(wsHub)
	log.Println("WebSocket hub started")

	container := &rest.Container{
		SessionService: application.SessionService,
		CatalogService: application.CatalogService,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/catalog")
		log.Println("  POST /v1/sessions")
		log.Println("  GET  /v1/sessions/{id}")
		log.Println("  PUT  /v1/sessions/{id}/answers/{key}")
		log.Println("  POST /v1/sessions/{id}/answers/{key}/toggle")
		log.Println("  PUT  /v1/sessions/{id}/followups/{subKey}")
		log.Println("  POST /v1/sessions/{id}/followups/{subKey}/toggle")
		log.Println("  POST /v1/sessions/{id}/next|back|skip")
		log.Println("  GET  /v1/sessions/{id}/completion")
		log.Println("  WS   /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
