package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog пишет строку лога на каждый запрос, паника в обработчике превращается в 500
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			defer func() {
				if p := recover(); p != nil {
					logger.Error("[HTTP] request_id=%s method=%s path=%s panic: %v",
						GetRequestID(r.Context()), r.Method, r.URL.Path, p)
					http.Error(rec, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}

				logger.Info("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f",
					GetRequestID(r.Context()), r.Method, r.URL.Path, rec.status,
					float64(time.Since(start).Microseconds())/1000.0)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
