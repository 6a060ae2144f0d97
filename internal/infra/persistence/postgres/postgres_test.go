package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"testing"
	"time"

	"menumaster/config"
	deliverycontext "menumaster/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestPoolWatcher_Report(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		wantLog   string
	}{
		{
			name:    "no new waits",
			prev:    sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantLog: "",
		},
		{
			name:    "short waits",
			prev:    sql.DBStats{WaitCount: 1},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLog: `"level":"DEBUG"`,
		},
		{
			name:    "long waits",
			cur:     sql.DBStats{WaitCount: 2, WaitDuration: time.Second, InUse: 10},
			wantLog: `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := &poolWatcher{logger: newBufferLogger(&buf)}

			w.report(context.Background(), tt.prev, tt.cur)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "Postgres pool wait")
		})
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func(query string) func() (string, int64) {
		return func() (string, int64) { return query, 1 }
	}

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("errors use the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		base := newBufferLogger(&buf)
		l := newGormSlogLogger(base, &config.Config{})
		ctx, _ := deliverycontext.Scope(context.Background(), base, "req-7")

		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), `"request_id":"req-7"`)
	})

	t.Run("long sql is truncated", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Info)

		l.Trace(context.Background(), time.Now(), sqlFn(strings.Repeat("x", maxLoggedSQL*2)), nil)

		assert.Contains(t, buf.String(), "GORM query")
		assert.NotContains(t, buf.String(), strings.Repeat("x", maxLoggedSQL+1))
	})

	t.Run("silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.False(t, isNotNullConstraintViolation(nil))
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "body" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
