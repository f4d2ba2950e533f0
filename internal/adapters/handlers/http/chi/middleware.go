package chi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware logs every request but health checks. Uploads are logged with the bytes read.
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path == "/health" {
					return
				}

				attrs := []any{
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes_written", ww.BytesWritten(),
					"duration", time.Since(start),
				}
				if r.Method == http.MethodPut && r.ContentLength > 0 {
					attrs = append(attrs, "content_length", r.ContentLength)
				}

				switch {
				case ww.Status() >= http.StatusInternalServerError:
					l.Error("http_request", attrs...)
				case ww.Status() >= http.StatusBadRequest:
					l.Warn("http_request", attrs...)
				default:
					l.Info("http_request", attrs...)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
