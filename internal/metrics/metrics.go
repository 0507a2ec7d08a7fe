package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "drivahub_"

const (
	ResultSuccess      = "success"
	ResultParseError   = "parse_error"
	ResultExtractError = "extract_error"
	ResultStoreError   = "store_error"
	ResultError        = "error"
)

var (
	registerOnce sync.Once

	ingestTotal   *prometheus.CounterVec
	ingestLatency *prometheus.HistogramVec
	recordsTotal  *prometheus.CounterVec

	statsTotal   *prometheus.CounterVec
	statsLatency *prometheus.HistogramVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	publishErrors *prometheus.CounterVec
)

// Init registers service metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		ingestTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ingest_total",
				Help: "Total ingestions by result",
			},
			[]string{"result"},
		)
		ingestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ingest_latency_seconds",
				Help:    "Ingestion latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		recordsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "records_created_total",
				Help: "Total records created by kind",
			},
			[]string{"kind"},
		)
		statsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dashboard_stats_total",
				Help: "Total dashboard computations by period and result",
			},
			[]string{"period", "result"},
		)
		statsLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "dashboard_stats_latency_seconds",
				Help:    "Dashboard computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"period"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_export_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_export_latency_seconds",
				Help:    "Report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)
		publishErrors = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "event_publish_errors_total",
				Help: "Total failed event publications by event type",
			},
			[]string{"type"},
		)

		prometheus.MustRegister(
			ingestTotal,
			ingestLatency,
			recordsTotal,
			statsTotal,
			statsLatency,
			exportTotal,
			exportLatency,
			publishErrors,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveIngest records ingestion duration and result.
func ObserveIngest(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if ingestTotal != nil {
		ingestTotal.WithLabelValues(result).Inc()
	}
	if ingestLatency != nil {
		ingestLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// AddRecords increments created records of one kind.
func AddRecords(kind string, count int) {
	if count <= 0 {
		return
	}
	if recordsTotal != nil {
		recordsTotal.WithLabelValues(kind).Add(float64(count))
	}
}

func ObserveStats(period, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if statsTotal != nil {
		statsTotal.WithLabelValues(period, result).Inc()
	}
	if statsLatency != nil {
		statsLatency.WithLabelValues(period).Observe(duration.Seconds())
	}
}

func ObserveExport(format, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format).Observe(duration.Seconds())
	}
}

func IncPublishError(eventType string) {
	if eventType == "" {
		eventType = "unknown"
	}
	if publishErrors != nil {
		publishErrors.WithLabelValues(eventType).Inc()
	}
}
