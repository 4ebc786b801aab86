package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"dirserve"
)

// HandlerFunc is a request handler that reports failures instead of writing
// them, leaving status mapping to ErrorBoundary.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorBoundary wraps one request-handling invocation.
//
// A *dirserve.RequestError is answered with its status code and an empty
// body, then logged. Any other error is logged and nothing more is sent: if
// the handler already wrote headers, a late status line would corrupt the
// stream, so the partial response stands. On every exit path the request body
// is drained and closed exactly once.
func ErrorBoundary(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		}()

		err := h(w, r)
		if err == nil {
			return
		}

		var reqErr *dirserve.RequestError
		if errors.As(err, &reqErr) {
			w.WriteHeader(reqErr.StatusCode)
			slog.Error("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", reqErr.StatusCode,
				"request_id", RequestIDFromContext(r.Context()),
				"err", err,
			)
			return
		}

		slog.Error("request aborted",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err,
		)
	})
}

type requestIDKey struct{}

// RequestID tags each request with an identifier, reusing the client's
// X-Request-Id when present, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request's identifier, or "" when the
// RequestID middleware did not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per completed request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}
