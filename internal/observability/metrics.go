// Package observability provides Prometheus metrics for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devlog_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LoginAttempts counts login attempts by outcome (success, invalid_credentials, error).
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devlog_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// CounterEvents counts recorded view/like events by kind.
	CounterEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devlog_counter_events_total",
		Help: "Total number of recorded post counter events",
	}, []string{"kind"})

	// Subscriptions counts newsletter sign-up outcomes (created, existing).
	Subscriptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devlog_subscriptions_total",
		Help: "Total number of newsletter sign-ups by outcome",
	}, []string{"outcome"})

	// MetaGenerations counts upstream text-generation calls by outcome.
	MetaGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devlog_meta_generations_total",
		Help: "Total number of meta description generations by outcome",
	}, []string{"outcome"})
)
