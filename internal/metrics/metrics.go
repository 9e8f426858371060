// metrics — prometheus-метрики lifelog:
// HTTP-запросы (счётчик и гистограмма длительности по маршруту)
// и события записей дней (сохранения, удаления).
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pribylovaa/go-lifelog/internal/models"
)

const namespace = "lifelog"

// Metrics — набор коллекторов сервиса.
// Реализует service.Observer и middleware.HTTPObserver.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	saved    *prometheus.CounterVec
	deleted  prometheus.Counter
}

// New создаёт коллекторы и регистрирует их в reg.
// reg == nil — используется prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		saved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entries",
			Name:      "saved_total",
			Help:      "Day entries saved, by mood.",
		}, []string{"mood"}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entries",
			Name:      "deleted_total",
			Help:      "Day entries removed by delete-all.",
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.saved, m.deleted)

	return m
}

// ObserveHTTP учитывает завершённый HTTP-запрос.
// route — шаблон маршрута (например, /entries/{date}), а не фактический путь.
func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if route == "" {
		route = "unmatched"
	}

	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// EntrySaved учитывает сохранение записи дня.
func (m *Metrics) EntrySaved(_ context.Context, e *models.DayEntry) {
	mood := models.DefaultMood
	if e != nil && e.Mood != "" {
		mood = e.Mood
	}

	m.saved.WithLabelValues(mood).Inc()
}

// EntriesDeleted учитывает удалённые записи.
func (m *Metrics) EntriesDeleted(_ context.Context, n int64) {
	if n > 0 {
		m.deleted.Add(float64(n))
	}
}
