package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/estateops/estate-api/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry     *prometheus.Registry
	namespace    string
	httpReqCnt   *prometheus.CounterVec
	httpDur      *prometheus.HistogramVec
	httpInfl     *prometheus.GaugeVec
	lifecycleCnt *prometheus.CounterVec
	reportDur    *prometheus.HistogramVec
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	r := prometheus.NewRegistry()
	// Register standard process and Go collectors
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: cfg.Buckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	lifecycleCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "lifecycle_transitions_total"}, []string{"operation", "outcome"})
	reportDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "report_query_duration_seconds", Buckets: cfg.Buckets}, []string{"view"})
	r.MustRegister(lifecycleCnt, reportDur)

	return &Metrics{
		registry:     r,
		namespace:    ns,
		httpReqCnt:   httpReqCnt,
		httpDur:      httpDur,
		httpInfl:     httpInfl,
		lifecycleCnt: lifecycleCnt,
		reportDur:    reportDur,
	}
}

// LifecycleTransition records the outcome of a lifecycle engine operation.
func (m *Metrics) LifecycleTransition(operation, outcome string) {
	m.lifecycleCnt.WithLabelValues(operation, outcome).Inc()
}

// ReportQueryDone records the duration of a reporting view computation.
func (m *Metrics) ReportQueryDone(view string, since time.Time) {
	m.reportDur.WithLabelValues(view).Observe(time.Since(since).Seconds())
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
