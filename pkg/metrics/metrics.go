package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the subset of metrics the handlers and services report to.
type Recorder interface {
	RecordLogin(outcome string)
	RecordProfileUpdate(field string)
	RecordNotificationsPurged(count int64)
	RecordBoardToggle(kind string, on bool)
}

// Collector implements Recorder on top of a prometheus registry.
type Collector struct {
	httpRequests        *prometheus.CounterVec
	httpLatency         *prometheus.HistogramVec
	logins              *prometheus.CounterVec
	profileUpdates      *prometheus.CounterVec
	notificationsPurged prometheus.Counter
	boardToggles        *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localflow_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "localflow_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localflow_logins_total",
			Help: "Login submissions by outcome.",
		}, []string{"outcome"}),
		profileUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localflow_profile_updates_total",
			Help: "Profile updates by field.",
		}, []string{"field"}),
		notificationsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "localflow_notifications_purged_total",
			Help: "Notifications deleted by the maintenance purge.",
		}),
		boardToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localflow_board_toggles_total",
			Help: "Like and bookmark toggles by kind and resulting state.",
		}, []string{"kind", "state"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.logins,
		c.profileUpdates,
		c.notificationsPurged,
		c.boardToggles,
	)
	return c
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordProfileUpdate(field string) {
	c.profileUpdates.WithLabelValues(field).Inc()
}

func (c *Collector) RecordNotificationsPurged(count int64) {
	c.notificationsPurged.Add(float64(count))
}

func (c *Collector) RecordBoardToggle(kind string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	c.boardToggles.WithLabelValues(kind, state).Inc()
}

// Middleware records request count and latency per matched route.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method
			c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			c.httpLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler returns the prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Nop discards everything; used where metrics are not wired.
type Nop struct{}

func (Nop) RecordLogin(string)              {}
func (Nop) RecordProfileUpdate(string)      {}
func (Nop) RecordNotificationsPurged(int64) {}
func (Nop) RecordBoardToggle(string, bool)  {}
