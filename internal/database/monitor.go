package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// newSlowCommandMonitor logs every command slower than threshold, and
// every failed command at debug level.
func newSlowCommandMonitor(logger *zerolog.Logger, threshold time.Duration) *event.CommandMonitor {
	log := logger.With().Str("component", "mongo").Logger()

	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			if evt.Duration < threshold {
				return
			}
			log.Warn().
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Int64("request_id", evt.RequestID).
				Dur("duration", evt.Duration).
				Msg("slow mongo command")
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			log.Debug().
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Dur("duration", evt.Duration).
				Str("failure", evt.Failure).
				Msg("mongo command failed")
		},
	}
}
