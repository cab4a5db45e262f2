package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                        sync.Once
	metricsRouter               *chi.Mux
	apiRequestDurationHistogram *prometheus.HistogramVec
	oracleClientLatency         *prometheus.HistogramVec
	tokenClientLatency          *prometheus.HistogramVec
	treasuryClientLatency       *prometheus.HistogramVec
	kycClientLatency            *prometheus.HistogramVec
	ledgerOperationDuration     *prometheus.HistogramVec
	queueSendErrorCounter       prometheus.Counter
	mintedTotalGauge            prometheus.Gauge
	remainingCapacityGauge      prometheus.Gauge
	dbLatency                   *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	apiRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Histogram of incoming API request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	oracleClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_client_latency_seconds",
			Help:    "Histogram of price oracle client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	tokenClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "token_client_latency_seconds",
			Help:    "Histogram of token ledger client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"token", "method", "status"},
	)

	treasuryClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "treasury_client_latency_seconds",
			Help:    "Histogram of treasury router client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	kycClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kyc_client_latency_seconds",
			Help:    "Histogram of KYC registry client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	ledgerOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Core ledger operation duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	mintedTotalGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "minted_total",
			Help: "Cumulative reserve token issuance in base units",
		},
	)

	remainingCapacityGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "remaining_capacity",
			Help: "Last computed remaining reserve capacity in base units",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		apiRequestDurationHistogram,
		oracleClientLatency,
		tokenClientLatency,
		treasuryClientLatency,
		kycClientLatency,
		ledgerOperationDuration,
		queueSendErrorCounter,
		mintedTotalGauge,
		remainingCapacityGauge,
		dbLatency,
	)
}

func RecordApiRequestDuration(d time.Duration, method, path string, statusCode int) {
	apiRequestDurationHistogram.WithLabelValues(method, path, strconv.Itoa(statusCode)).Observe(d.Seconds())
}

func RecordOracleClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	oracleClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordTokenClientLatency(d time.Duration, token, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	tokenClientLatency.WithLabelValues(token, method, status.String()).Observe(d.Seconds())
}

func RecordTreasuryClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	treasuryClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordKycClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	kycClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordLedgerOperationDuration(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	ledgerOperationDuration.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordMintedTotal(total uint64) {
	mintedTotalGauge.Set(float64(total))
}

func RecordRemainingCapacity(capacity uint64) {
	remainingCapacityGauge.Set(float64(capacity))
}

func IncQueueSendErrors() {
	queueSendErrorCounter.Inc()
}
