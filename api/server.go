package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/config"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/graph"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router, err := newRouter(db, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	readTimeout := config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180)
	writeTimeout := config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180)
	idleTimeout := config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(db database.Database, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.config == nil {
		router.config = config.New()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	signingKey := []byte(config.GetString(router.config, "TOKEN_SIGNING_KEY", "insecure-dev-key"))
	authService := auth.NewService(db, signingKey)

	handlers := initializeHandlers(db, authService)
	authMiddleware := newAuthMiddleware(authService)

	graphHandler, err := graph.NewHandler(db, authService)
	if err != nil {
		return nil, fmt.Errorf("building graphql schema: %w", err)
	}

	setupRoutes(chiRouter, handlers, authMiddleware, graphHandler)

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
