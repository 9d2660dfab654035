package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and domain collectors. It also implements core.Recorder.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	tasksCreated  prometheus.Counter
	usersDeleted  prometheus.Counter
	tasksCascaded prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "household_http_requests_total", Help: "HTTP requests by route and status"},
			[]string{"method", "route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "household_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		tasksCreated: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "household_tasks_created_total", Help: "Tasks created"},
		),
		usersDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "household_users_deleted_total", Help: "Accounts deleted"},
		),
		tasksCascaded: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "household_cascade_tasks_deleted_total", Help: "Tasks removed by account deletion"},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.tasksCreated, m.usersDeleted, m.tasksCascaded)
	return m
}

func (m *Metrics) TaskCreated() {
	m.tasksCreated.Inc()
}

func (m *Metrics) UserDeleted(cascaded int) {
	m.usersDeleted.Inc()
	m.tasksCascaded.Add(float64(cascaded))
}

// Instrument labels requests with the mux pattern that serves them so path ids do not explode cardinality.
func (m *Metrics) Instrument(mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, route := mux.Handler(r)
			if route == "" {
				route = "unmatched"
			}

			start := time.Now()
			sr := wrap(w)

			next.ServeHTTP(sr, r)

			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(sr.status)).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
