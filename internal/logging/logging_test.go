package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func bufferedHandler() *PGHandler {
	return &PGHandler{sink: &sink{buffer: make([]models.SystemLog, 0, batchSize)}}
}

func TestPGHandlerMapsKnownAttrs(t *testing.T) {
	h := bufferedHandler()
	logger := slog.New(h).With("request_id", "req-1")

	logger.Error("request failed",
		"method", "GET",
		"path", "/api/vendors",
		"user_id", "u-1",
		"error", "boom",
		"status", 500,
		"latency_ms", 12.6,
		"vendor_id", "v-9",
	)

	require.Len(t, h.buffer, 1)
	entry := h.buffer[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "GET", entry.Method)
	assert.Equal(t, "/api/vendors", entry.Path)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)
	assert.Equal(t, 500, entry.Status)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, map[string]any{"vendor_id": "v-9"}, extra)
}

func TestPGHandlerSkipsBelowError(t *testing.T) {
	h := bufferedHandler()
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandlerFansOut(t *testing.T) {
	var out bytes.Buffer
	pg := bufferedHandler()
	logger := slog.New(NewMultiHandler(
		slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pg,
	))

	logger.Info("started")
	logger.Error("failed")

	assert.Contains(t, out.String(), `"msg":"started"`)
	assert.Contains(t, out.String(), `"msg":"failed"`)
	require.Len(t, pg.buffer, 1)
	assert.Equal(t, "failed", pg.buffer[0].Message)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandlerKeepsDeliveringAfterFailure(t *testing.T) {
	var out bytes.Buffer
	h := NewMultiHandler(
		failingHandler{slog.NewJSONHandler(io.Discard, nil)},
		slog.NewJSONHandler(&out, nil),
	)

	err := slog.New(h).Handler().Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "vendor cache write failed", 0))
	assert.EqualError(t, err, "sink down")
	assert.Contains(t, out.String(), "vendor cache write failed")
}

func TestNewRetentionRejectsNonPositiveDays(t *testing.T) {
	_, err := NewRetention(nil, 0)
	assert.Error(t, err)
}

func TestRetentionPurgesOnStart(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=wed dbname=wed sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	purged := make(chan string, 1)
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:purged", func(tx *gorm.DB) {
		select {
		case purged <- tx.Statement.SQL.String():
		default:
		}
	}))

	r, err := NewRetention(db, 30)
	require.NoError(t, err)
	r.Start()
	t.Cleanup(func() { _ = r.Stop() })

	select {
	case stmt := <-purged:
		assert.Equal(t, `DELETE FROM "system_logs" WHERE timestamp < $1`, stmt)
	case <-time.After(5 * time.Second):
		t.Fatal("retention did not run after Start")
	}
}
