package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func queryFunc(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestNewGormLogger_Defaults(t *testing.T) {
	zl, _ := newObservedLogger(zapcore.DebugLevel)

	l := NewGormLogger(zl, gormlogger.Info)

	assert.Equal(t, gormlogger.Info, l.level)
	assert.Equal(t, defaultSlowQueryThreshold, l.slowThreshold)
	assert.True(t, l.skipNotFound)
}

func TestNewGormLogger_Options(t *testing.T) {
	zl, _ := newObservedLogger(zapcore.DebugLevel)

	l := NewGormLogger(zl, gormlogger.Warn,
		WithSlowThreshold(time.Second),
		WithIgnoreRecordNotFoundError(false),
	)

	assert.Equal(t, time.Second, l.slowThreshold)
	assert.False(t, l.skipNotFound)
}

func TestGormLogger_LogMode_Copies(t *testing.T) {
	zl, _ := newObservedLogger(zapcore.DebugLevel)

	l := NewGormLogger(zl, gormlogger.Info)
	clone := l.LogMode(gormlogger.Silent)

	assert.Equal(t, gormlogger.Info, l.level)
	assert.Equal(t, gormlogger.Silent, clone.(*GormLogger).level)
}

func TestGormLogger_Trace_Outcomes(t *testing.T) {
	begin := func() time.Time { return time.Now() }

	t.Run("statement logs at debug", func(t *testing.T) {
		zl, recorded := newObservedLogger(zapcore.DebugLevel)
		l := NewGormLogger(zl, gormlogger.Info)

		l.Trace(context.Background(), begin(), queryFunc(`SELECT * FROM "devis"`, 3), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "SQL Query", logs[0].Message)
		assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
	})

	t.Run("failure logs at error with the statement", func(t *testing.T) {
		zl, recorded := newObservedLogger(zapcore.DebugLevel)
		l := NewGormLogger(zl, gormlogger.Error)

		l.Trace(context.Background(), begin(), queryFunc(`UPDATE "factures" SET statut = ?`, 0), errors.New("contrainte violée"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "SQL Error", logs[0].Message)
	})

	t.Run("record not found is skipped by default", func(t *testing.T) {
		zl, recorded := newObservedLogger(zapcore.DebugLevel)
		l := NewGormLogger(zl, gormlogger.Error)

		l.Trace(context.Background(), begin(), queryFunc(`SELECT * FROM "clients" WHERE id = ?`, 0), gormlogger.ErrRecordNotFound)

		assert.Empty(t, recorded.All())
	})

	t.Run("slow query logs at warn", func(t *testing.T) {
		zl, recorded := newObservedLogger(zapcore.DebugLevel)
		l := NewGormLogger(zl, gormlogger.Warn, WithSlowThreshold(time.Nanosecond))

		l.Trace(context.Background(), time.Now().Add(-time.Second), queryFunc(`SELECT * FROM "paiements"`, 10), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "SLOW SQL")
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})

	t.Run("silent level logs nothing", func(t *testing.T) {
		zl, recorded := newObservedLogger(zapcore.DebugLevel)
		l := NewGormLogger(zl, gormlogger.Silent)

		l.Trace(context.Background(), begin(), queryFunc(`SELECT 1`, 1), nil)

		assert.Empty(t, recorded.All())
	})

	t.Run("request id from the context is attached", func(t *testing.T) {
		zl, recorded := newObservedLogger(zapcore.DebugLevel)
		l := NewGormLogger(zl, gormlogger.Info)

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-7")
		l.Trace(ctx, begin(), queryFunc(`SELECT 1`, 1), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		field, ok := fieldValue(&logs[0], "request_id")
		require.True(t, ok)
		assert.Equal(t, "req-7", field.String)
	})
}

func TestMapGormLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"silent":  gormlogger.Silent,
		"error":   gormlogger.Error,
		"warn":    gormlogger.Warn,
		"info":    gormlogger.Info,
		"debug":   gormlogger.Info,
		"verbose": gormlogger.Warn,
		"":        gormlogger.Warn,
	}
	for level, want := range cases {
		assert.Equal(t, want, MapGormLogLevel(level), "level %q", level)
	}
}
