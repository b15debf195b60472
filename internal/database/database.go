// Package database contains the logic for establishing
// the connection to MongoDB.
//
// It handles:
//   - building client options from config (URI, app name, pool size)
//   - wiring command monitoring (slow command logging)
//   - optional New Relic instrumentation (nrmongo)
//   - failing fast at startup when the server is unreachable
package database

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ynsvrs/practice11/internal/config"
	loggerConfig "github.com/ynsvrs/practice11/internal/logger"
)

// Database wraps the mongo client and the handle of the products collection.
// It is the single store session shared by all requests.
type Database struct {
	Client *mongo.Client

	collection *mongo.Collection
	log        *zerolog.Logger
}

// New connects to MongoDB and verifies the server answers a ping.
//
// Inputs:
//   - ctx: startup context, bounded further by cfg.Database.ConnectTimeout
//   - cfg: application config
//   - logger: main app logger
//   - loggerService: optional New Relic service (nil if not configured)
//
// The returned Database is ready to serve; any failure is returned
// to the caller, which decides whether to exit.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(cfg.Database.ConnectTimeout).
		SetServerSelectionTimeout(cfg.Database.ConnectTimeout)

	if cfg.Database.AppName != "" {
		clientOpts.SetAppName(cfg.Database.AppName)
	}
	if cfg.Database.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(cfg.Database.MaxPoolSize)
	}

	var monitor *event.CommandMonitor
	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		monitor = newSlowCommandMonitor(logger, cfg.Observability.Logging.SlowQueryThreshold)
	}

	// nrmongo wraps the original monitor so both run for every command.
	if loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}

	if monitor != nil {
		clientOpts.SetMonitor(monitor)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("database", cfg.Database.Name).
		Str("collection", cfg.Database.Collection).
		Msg("connected to the database")

	return &Database{
		Client:     client,
		collection: client.Database(cfg.Database.Name).Collection(cfg.Database.Collection),
		log:        logger,
	}, nil
}

// Collection returns the products collection handle.
func (db *Database) Collection() *mongo.Collection {
	return db.collection
}

// Close disconnects the client, waiting for in-use connections until ctx expires.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}
