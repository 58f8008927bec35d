package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/verso/inkwell/api/internal/config"
	"github.com/verso/inkwell/api/internal/database"
	"github.com/verso/inkwell/api/internal/handler"
	"github.com/verso/inkwell/api/internal/middleware"
	"github.com/verso/inkwell/api/internal/repository"
	"github.com/verso/inkwell/api/internal/service"
	"github.com/verso/inkwell/api/internal/storage"
	"github.com/verso/inkwell/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Fall back to the development secret only outside production;
	// Validate has already refused this combination in production.
	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		jwtSecret = config.DevSecret
		slog.Warn("JWT_SECRET not set, using development secret; tokens are not safe for production")
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     jwtSecret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: time.Duration(cfg.JWT.ExpirationDays) * 24 * time.Hour,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize upload storage
	uploadStore, err := storage.NewUploadStore(cfg.Uploads.Dir)
	if err != nil {
		slog.Error("failed to initialize upload storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(jwtService)
	authService := service.NewAuthService(userRepo, tokenService)
	postService := service.NewPostService(postRepo, userRepo, uploadStore, logger)
	commentService := service.NewCommentService(commentRepo, postRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	postHandler := handler.NewPostHandler(postService, uploadStore, cfg.Uploads.MaxBytes)
	commentHandler := handler.NewCommentHandler(commentService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(tokenService)
	optionalAuthMiddleware := middleware.OptionalAuth(tokenService)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// User endpoints
	mux.HandleFunc("GET /v1/users", userHandler.List)

	// Post endpoints. Creation is optionally authenticated: a valid
	// token attributes the post, anything else publishes anonymously.
	mux.HandleFunc("GET /v1/posts", postHandler.List)
	mux.Handle("POST /v1/posts", optionalAuthMiddleware(http.HandlerFunc(postHandler.Create)))
	mux.HandleFunc("GET /v1/posts/{postId}", postHandler.Get)
	mux.HandleFunc("PATCH /v1/posts/{postId}", postHandler.Update)
	mux.HandleFunc("DELETE /v1/posts/{postId}", postHandler.Delete)
	mux.HandleFunc("POST /v1/posts/{postId}/views", postHandler.RecordView)
	mux.Handle("POST /v1/posts/{postId}/save", authMiddleware(http.HandlerFunc(postHandler.Save)))
	mux.Handle("POST /v1/posts/{postId}/unsave", authMiddleware(http.HandlerFunc(postHandler.Unsave)))

	// Comment endpoints
	mux.HandleFunc("POST /v1/posts/{postId}/comments", commentHandler.Create)
	mux.HandleFunc("GET /v1/posts/{postId}/comments", commentHandler.List)

	// Uploaded images
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStore.Dir()))))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
