package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/adapter/postgres"
	"github.com/Duncanian/develop-v2/internal/adapter/rabbitmq"
	appauth "github.com/Duncanian/develop-v2/internal/app/auth"
	"github.com/Duncanian/develop-v2/internal/app/menu"
	"github.com/Duncanian/develop-v2/internal/app/order"
	"github.com/Duncanian/develop-v2/internal/config"
	"github.com/Duncanian/develop-v2/internal/interfaces"
	"github.com/Duncanian/develop-v2/internal/token"

	httpAdapter "github.com/Duncanian/develop-v2/internal/adapter/http"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx := context.Background()
	lgr := logger.New("meal-api")

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// The broker is optional; order events are skipped without it.
	var publisher interfaces.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer mqConn.Close()
		publisher = rabbitmq.NewPublisher(mqConn)

		lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
			"host": cfg.RabbitMQ.Host,
		})
	}

	orderRepo := postgres.NewOrderRepository(db)
	mealRepo := postgres.NewMealRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	userRepo := postgres.NewUserRepository(db)

	tokens := token.NewManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTL)*time.Hour)

	orderService := order.NewService(orderRepo, mealRepo, publisher, lgr, cfg.Orders.DedupPolicy)
	menuService := menu.NewService(mealRepo, menuRepo, lgr)
	authService := appauth.NewService(userRepo, tokens, lgr)

	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)
	menuHandler := httpAdapter.NewMenuHandler(menuService, lgr)
	authHandler := httpAdapter.NewAuthHandler(authService, lgr)
	authMiddleware := httpAdapter.NewAuthMiddleware(tokens, lgr)

	mux := httpAdapter.NewRouter(orderHandler, menuHandler, authHandler, authMiddleware)

	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Meal API started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Meal API", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
