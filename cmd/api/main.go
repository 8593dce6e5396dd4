package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/homequest/homequest-go/internal/config"
	"github.com/homequest/homequest-go/internal/handler"
	"github.com/homequest/homequest-go/internal/logger"
	"github.com/homequest/homequest-go/internal/middleware"
	"github.com/homequest/homequest-go/internal/model"
	"github.com/homequest/homequest-go/internal/repository"
	"github.com/homequest/homequest-go/internal/service"
)

func main() {
	godotenvErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	if godotenvErr != nil {
		log.Warn().Msg("no .env file found, using environment variables")
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	homeRepo := repository.NewHomeRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.ProductKeySecret, log)
	homeService := service.NewHomeService(homeRepo)
	messageService := service.NewMessageService(messageRepo, homeService)

	authHandler := handler.NewAuthHandler(authService)
	homeHandler := handler.NewHomeHandler(homeService)
	messageHandler := handler.NewMessageHandler(messageService)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         86400,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Credential endpoints: unauthenticated, tightly rate limited.
		// The product key endpoint is deliberately open to match the
		// upstream behavior; see DESIGN.md for the risk note.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/auth/signup/{role}", authHandler.HandleSignup)
			r.Post("/auth/signin", authHandler.HandleSignin)
			r.Post("/auth/key", authHandler.HandleGenerateKey)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTSecret))
			r.Get("/auth/me", authHandler.HandleMe)
		})

		// Public listing reads.
		r.Get("/homes", homeHandler.HandleListHomes)
		r.Get("/homes/{id}", homeHandler.HandleGetHome)

		// Realtor-only listing mutation; ownership is enforced in the
		// home service for update and delete.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTSecret))
			r.Use(middleware.RequireRole(userRepo, model.RoleRealtor))
			r.Post("/homes", homeHandler.HandleCreateHome)
			r.Put("/homes/{id}", homeHandler.HandleUpdateHome)
			r.Delete("/homes/{id}", homeHandler.HandleDeleteHome)
			r.Get("/homes/{id}/messages", messageHandler.HandleHomeMessages)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTSecret))
			r.Use(middleware.RequireRole(userRepo, model.RoleBuyer))
			r.Post("/homes/{id}/inquire", messageHandler.HandleInquire)
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced shutdown")
	}

	log.Info().Msg("server stopped")
}
