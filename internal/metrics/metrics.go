package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ChatRequests counts chat calls by terminal outcome class ("success" or a
// failure class such as "rate_limit").
var ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ragserver",
	Name:      "chat_requests_total",
	Help:      "Chat requests by terminal outcome.",
}, []string{"outcome"})

// ProviderAttempts counts individual provider invocations, including retries.
var ProviderAttempts = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ragserver",
	Name:      "provider_attempts_total",
	Help:      "Provider API calls, retries included.",
})

// QueueDepth tracks the number of jobs waiting in the dispatch queue.
var QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ragserver",
	Name:      "dispatch_queue_depth",
	Help:      "Jobs pending in the serialized dispatch queue.",
})

// RequestDuration observes HTTP request latency per route.
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "ragserver",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency by route.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "status"})
