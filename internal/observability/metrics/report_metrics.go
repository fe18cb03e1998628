package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics tracks the financial report engine's query workload.
type ReportMetrics struct {
	reportDuration  *prometheus.HistogramVec
	reportsServed   *prometheus.CounterVec
	fallbacksServed *prometheus.CounterVec
}

var (
	reportMetricsOnce sync.Once
	reportMetrics     *ReportMetrics
)

// Report returns the process-wide report metrics, registering them on first use.
func Report(cfg Config) *ReportMetrics {
	reportMetricsOnce.Do(func() {
		reportMetrics = newReportMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return reportMetrics
}

// ResetReportMetricsForTest clears the singleton between test registries.
func ResetReportMetricsForTest() {
	reportMetricsOnce = sync.Once{}
	reportMetrics = nil
}

func newReportMetrics(registerer prometheus.Registerer, cfg Config) *ReportMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	constLabels := prometheus.Labels{
		"service": cfg.serviceName(),
		"env":     cfg.environment(),
	}

	reportDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "rentora_report_duration_seconds",
			Help:        "Wall time spent assembling a financial report.",
			Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			ConstLabels: constLabels,
		},
		[]string{"report"},
	)

	reportsServed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "rentora_reports_served_total",
			Help:        "Reports served by kind and outcome.",
			ConstLabels: constLabels,
		},
		[]string{"report", "result"}, // success | error
	)

	fallbacksServed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "rentora_report_fallbacks_total",
			Help:        "Zero-valued fallback reports served after collaborator failures.",
			ConstLabels: constLabels,
		},
		[]string{"report"},
	)

	registerer.MustRegister(reportDuration, reportsServed, fallbacksServed)

	return &ReportMetrics{
		reportDuration:  reportDuration,
		reportsServed:   reportsServed,
		fallbacksServed: fallbacksServed,
	}
}

// ObserveReport records one served report.
func (m *ReportMetrics) ObserveReport(report string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.reportsServed.WithLabelValues(report, result).Inc()
	m.reportDuration.WithLabelValues(report).Observe(duration.Seconds())
}

// IncFallback records a degraded-mode report.
func (m *ReportMetrics) IncFallback(report string) {
	if m == nil {
		return
	}
	m.fallbacksServed.WithLabelValues(report).Inc()
}
