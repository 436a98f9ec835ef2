package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/tasks-api-be/internal/api"
	"github.com/isdelr/tasks-api-be/internal/auth"
	"github.com/isdelr/tasks-api-be/internal/config"
	"github.com/isdelr/tasks-api-be/internal/logger"
	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/services"
	"github.com/isdelr/tasks-api-be/internal/websocket"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seedPath := flag.String("seed", "", "replace all tasks with the JSON array in this file and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Server.LogLevel, cfg.Server.PrettyLogs)

	// Set up database
	st, err := openStores(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to open store")
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	eventService := services.NewEventService(st.events, hub)
	taskService := services.NewTaskService(st.tasks, eventService)
	userService := services.NewUserService(st.users, eventService)

	if *seedPath != "" {
		err := seed(context.Background(), taskService, *seedPath)
		hub.Stop()
		if err != nil {
			log.Error().Err(err).Str("file", *seedPath).Msg("Failed to seed tasks")
			st.close()
			os.Exit(1)
		}
		return
	}

	// Set up router
	router := api.NewRouter(
		api.Options{CORSOrigins: cfg.Server.CORSOrigins, AuthRequired: cfg.Auth.Required},
		hub,
		auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		st.tasks,
		taskService,
		userService,
		eventService,
	)

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.Server.Port).Bool("auth_required", cfg.Auth.Required).Msg("Server starting")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	hub.Stop()

	log.Info().Msg("Server exiting")
}

// seed loads a JSON array of tasks from path and replaces the stored tasks with it.
func seed(ctx context.Context, tasks services.TaskServiceProvider, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var items []models.Task
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	seeded, err := tasks.Seed(ctx, items)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(seeded)).Msg("Tasks seeded")
	return nil
}
