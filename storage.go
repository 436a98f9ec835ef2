package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/tasks-api-be/internal/config"
	"github.com/isdelr/tasks-api-be/internal/database"
	"github.com/isdelr/tasks-api-be/internal/store"
	"github.com/isdelr/tasks-api-be/internal/store/mongostore"
	"github.com/isdelr/tasks-api-be/internal/store/sqlstore"
)

type taskStore interface {
	store.TaskStore
	store.Pinger
}

// stores bundles the backend selected by configuration.
type stores struct {
	tasks  taskStore
	users  store.UserStore
	events store.EventStore
	close  func() error
}

func openStores(ctx context.Context, cfg config.DatabaseConfig) (*stores, error) {
	switch cfg.Driver {
	case config.DriverMongoDB:
		client, db, err := database.NewMongo(ctx, cfg.URL, cfg.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		users := mongostore.NewUserStore(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		log.Info().Str("database", cfg.Name).Msg("Connected to MongoDB")
		return &stores{
			tasks:  mongostore.NewTaskStore(db),
			users:  users,
			events: mongostore.NewEventStore(db),
			close:  func() error { return client.Disconnect(context.Background()) },
		}, nil

	default:
		db, err := database.New(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply database migrations: %w", err)
		}
		log.Info().Str("path", cfg.URL).Msg("Opened SQLite database")
		return &stores{
			tasks:  sqlstore.NewTaskStore(db),
			users:  sqlstore.NewUserStore(db),
			events: sqlstore.NewEventStore(db),
			close:  db.Close,
		}, nil
	}
}
