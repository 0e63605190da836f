package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/linarr-project/linarr/pkg/observability"
)

type ctxKey int

const requestIDKey ctxKey = 0

// requestIDFromContext returns the request ID attached by the middleware,
// or "" outside a request.
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID tags every request with a UUID, echoed in the X-Request-ID
// response header. A client-supplied X-Request-ID is kept as-is.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// logRequests logs each request and forwards it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.Host, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		observability.HTTP().OnResponse(ctx, r.Method, r.Host, r.URL.Path, ww.Status(), elapsed)
		s.logger.Infof("%s %s %d %s (%s)",
			r.Method, r.URL.Path, ww.Status(), elapsed.Round(time.Millisecond), requestIDFromContext(ctx))
	})
}
