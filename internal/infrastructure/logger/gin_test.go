package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	return zap.New(core), recorded
}

func findEntry(logs []observer.LoggedEntry, msg string) *observer.LoggedEntry {
	for i := range logs {
		if logs[i].Message == msg {
			return &logs[i]
		}
	}
	return nil
}

func fieldValue(entry *observer.LoggedEntry, key string) (zapcore.Field, bool) {
	for _, f := range entry.Context {
		if f.Key == key {
			return f, true
		}
	}
	return zapcore.Field{}, false
}

func TestGinMiddleware_LogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	zl, recorded := newObservedLogger(zapcore.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zl))
	r.GET("/devis", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/devis?page=2", nil)
	req.Header.Set("User-Agent", "facturation-test/1.0")
	r.ServeHTTP(w, req)

	entry := findEntry(recorded.All(), "http request")
	require.NotNil(t, entry)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	for _, key := range []string{"method", "path", "status", "latency", "client_ip", "user_agent"} {
		_, ok := fieldValue(entry, key)
		assert.True(t, ok, "missing field %s", key)
	}
	query, ok := fieldValue(entry, "query")
	require.True(t, ok)
	assert.Contains(t, query.String, "page=2")
}

func TestGinMiddleware_CarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	zl, recorded := newObservedLogger(zapcore.InfoLevel)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("request_id", "req-42")
		c.Next()
	})
	r.Use(GinMiddleware(zl))

	var handlerCtx context.Context
	r.GET("/ping", func(c *gin.Context) {
		handlerCtx = c.Request.Context()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	entry := findEntry(recorded.All(), "http request")
	require.NotNil(t, entry)
	id, ok := fieldValue(entry, "request_id")
	require.True(t, ok)
	assert.Equal(t, "req-42", id.String)

	// the request context must carry the id for L(ctx) and the gorm logger
	assert.Equal(t, "req-42", GetRequestID(handlerCtx))
}

func TestGinMiddleware_InstallsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	zl, recorded := newObservedLogger(zapcore.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zl))
	r.GET("/ping", func(c *gin.Context) {
		L(c.Request.Context()).Info("from handler")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.NotNil(t, findEntry(recorded.All(), "from handler"))
}

func TestGinMiddleware_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusUnprocessableEntity, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		zl, recorded := newObservedLogger(zapcore.InfoLevel)
		r := gin.New()
		r.Use(GinMiddleware(zl))
		r.GET("/s", func(c *gin.Context) { c.Status(tc.status) })

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/s", nil)
		r.ServeHTTP(w, req)

		entry := findEntry(recorded.All(), "http request")
		require.NotNil(t, entry)
		assert.Equal(t, tc.level, entry.Level, "status %d", tc.status)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	zl, recorded := newObservedLogger(zapcore.ErrorLevel)

	r := gin.New()
	r.Use(Recovery(zl))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	assert.NotPanics(t, func() { r.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.Contains(t, w.Body.String(), `"success":false`)

	entry := findEntry(recorded.All(), "panic recovered")
	require.NotNil(t, entry)
	_, hasStack := fieldValue(entry, "stacktrace")
	assert.True(t, hasStack)
}
