package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techagentng/chatter/config"
	"github.com/techagentng/chatter/db"
	"github.com/techagentng/chatter/services"
)

type Server struct {
	Config                 *config.Config
	AuthRepository         db.AuthRepository
	AuthService            services.AuthService
	ConversationRepository db.ConversationRepository
	ConversationService    services.ConversationService
	MessageRepository      db.MessageRepository
	MessageService         services.MessageService
	MediaRepository        db.MediaRepository
	MediaService           services.MediaService
	DB                     db.GormDB
}

// Start runs the HTTP server and shuts it down gracefully on SIGINT/SIGTERM.
func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Printf("Server started on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
