package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BackendRequestsTotal   *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec

	ActivityRecordErrors prometheus.Counter
	SlotBatchesTotal     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном регистре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики в указанном регистре (используется в тестах)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BackendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Requests sent to the DriveTail backend",
			ConstLabels: labels,
		}, []string{"method", "resource", "outcome"}),

		BackendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Latency of requests to the DriveTail backend",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "resource"}),

		ActivityRecordErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "activity_record_errors_total",
			Help:        "Activity journal writes that failed",
			ConstLabels: labels,
		}),

		SlotBatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_batches_total",
			Help:        "Slot batch submissions by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendRequestsTotal,
		m.BackendRequestDuration,
		m.ActivityRecordErrors,
		m.SlotBatchesTotal,
	)

	return m
}

// ObserveBackend фиксирует один запрос к бэкенду
func (m *Metrics) ObserveBackend(method, resource, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.BackendRequestsTotal.WithLabelValues(method, resource, outcome).Inc()
	m.BackendRequestDuration.WithLabelValues(method, resource).Observe(took.Seconds())
}

// IncActivityError увеличивает счетчик неудачных записей журнала
func (m *Metrics) IncActivityError() {
	if m == nil {
		return
	}
	m.ActivityRecordErrors.Inc()
}

// IncSlotBatch фиксирует результат создания пакета слотов
func (m *Metrics) IncSlotBatch(result string) {
	if m == nil {
		return
	}
	m.SlotBatchesTotal.WithLabelValues(result).Inc()
}

// ObserveHTTP фиксирует один входящий запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}
