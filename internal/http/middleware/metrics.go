package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// HTTPObserver получает сведения о каждом завершённом запросе.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, dur time.Duration)
}

// Metrics передаёт в obs метод, шаблон маршрута chi, статус и длительность запроса.
// obs == nil делает мидлвар no-op.
func Metrics(obs HTTPObserver) Middleware {
	return func(next http.Handler) http.Handler {
		if obs == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			// Шаблон известен только после маршрутизации.
			var route string
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}

			obs.ObserveHTTP(r.Method, route, sw.Status(), time.Since(start))
		})
	}
}
