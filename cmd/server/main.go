package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workhub-api/internal/config"
	"workhub-api/internal/database"
	"workhub-api/internal/handlers"
	"workhub-api/internal/notify"
	"workhub-api/internal/routes"
)

func main() {
	cfg := config.Load()

	// Init database
	database.InitDB(cfg.DatabasePath)

	// Email notifications: enqueue-and-continue, delivered out-of-band
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	queue := notify.NewQueue(mailer, 256)

	handlers.Init(queue, cfg.EnforceAssigneeMembership)

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	server := &http.Server{
		Addr:    cfg.Port,
		Handler: ginRoutes,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Println("API endpoints:")
		log.Println("  POST   /api/v1/auth/register")
		log.Println("  POST   /api/v1/auth/login")
		log.Println("  GET    /api/v1/projects")
		log.Println("  POST   /api/v1/projects")
		log.Println("  POST   /api/v1/projects/:projectId/members")
		log.Println("  GET    /api/v1/projects/:projectId/tasks")
		log.Println("  PATCH  /api/v1/projects/:projectId/tasks/:taskId/assignee")
		log.Println("  GET    /health")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	// Shutdown: stop accepting requests, then drain the notification queue so
	// already-accepted mutations still get their emails out.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Println("Server shutdown error:", err)
	}
	queue.Close()
	log.Println("Server stopped")
}
