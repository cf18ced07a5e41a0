package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries request id, both in requests and responses.
const RequestIDHeader = "X-Request-Id"

type loggerCtxKey struct{}

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			h(w, r)
		}
	}
}

// NewRequestIDMiddleware creates middleware tagging every request with an id.
// Id is taken from request header or generated. Handlers get a logger with "request_id" field, see requestLogger.
// Every handled request is logged.
func NewRequestIDMiddleware(l logrus.FieldLogger) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			rl := l.WithField("request_id", id)
			r = r.WithContext(context.WithValue(r.Context(), loggerCtxKey{}, rl))

			sw := statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			h(&sw, r)

			rl.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   sw.status,
				"duration": time.Since(start),
			}).Info("request handled")
		}
	}
}

func requestLogger(r *http.Request, l logrus.FieldLogger) logrus.FieldLogger {
	if rl, ok := r.Context().Value(loggerCtxKey{}).(logrus.FieldLogger); ok {
		return rl
	}
	return l
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
