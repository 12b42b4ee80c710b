// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visa_applications_submitted_total",
			Help: "Total number of visa applications submitted",
		},
		[]string{"speed_tier", "entry_type"},
	)

	ApplicationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visa_applications_failed_total",
			Help: "Total number of failed application submissions",
		},
		[]string{"error_code"},
	)

	OrderLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visa_order_lookups_total",
			Help: "Total number of order lookups by strategy and result",
		},
		[]string{"strategy", "result"},
	)

	PhotoUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visa_photo_uploads_total",
			Help: "Total number of applicant photo uploads",
		},
		[]string{"photo_type", "result"},
	)

	AdCopyGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visa_ad_copy_generated_total",
			Help: "Total number of ad copies generated by language and tier",
		},
		[]string{"language", "tier"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "visa_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)
)
