package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func succeeded(name string, d time.Duration) *event.CommandSucceededEvent {
	return &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{
			CommandName:  name,
			DatabaseName: "shop",
			Duration:     d,
		},
	}
}

func TestSlowCommandMonitor(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	monitor := newSlowCommandMonitor(&logger, 100*time.Millisecond)

	monitor.Succeeded(context.Background(), succeeded("find", 5*time.Millisecond))
	assert.Empty(t, buf.String(), "fast commands are not logged")

	monitor.Succeeded(context.Background(), succeeded("update", 250*time.Millisecond))
	assert.Contains(t, buf.String(), "slow mongo command")
	assert.Contains(t, buf.String(), `"command":"update"`)
	assert.Contains(t, buf.String(), `"component":"mongo"`)

	buf.Reset()
	monitor.Failed(context.Background(), &event.CommandFailedEvent{Failure: "boom"})
	assert.Empty(t, buf.String(), "failures are logged at debug")
}
