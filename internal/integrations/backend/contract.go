package backend

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector сбор метрик запросов к бэкенду
type MetricsCollector interface {
	ObserveBackend(method, resource, outcome string, took time.Duration)
}
