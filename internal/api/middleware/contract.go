package middleware

import "time"

// Logger интерфейс логгера middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPMetrics метрики входящих запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, took time.Duration)
}
