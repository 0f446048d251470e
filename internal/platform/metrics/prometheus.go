package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oris_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oris_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	DocumentsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oris_documents_issued_total",
			Help: "Total number of billing documents issued by type",
		},
		[]string{"type"},
	)

	DocumentRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oris_document_renders_total",
			Help: "Total number of PDF renders by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oris_document_render_duration_seconds",
			Help:    "PDF render duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"kind"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oris_store_errors_total",
			Help: "Store operations rejected, by collection and kind",
		},
		[]string{"collection", "kind"},
	)
)

// Document types counted by DocumentsIssued.
const (
	DocQuote      = "quote"
	DocInvoice    = "invoice"
	DocCreditNote = "credit_note"
)
