package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AllocationMetrics holds all metrics for vendor selection and fee allocation.
type AllocationMetrics struct {
	// Selections by the tie-break rule that produced the vendor
	VendorSelectionsTotal     prometheus.CounterVec
	VendorSelectionEmptyTotal prometheus.Counter
	VendorSelectionDuration   prometheus.Histogram

	// Checkout channel resolution
	ChannelFallbacksTotal prometheus.Counter

	// Geocoding
	GeocodeCacheHitsTotal   prometheus.Counter
	GeocodeCacheMissesTotal prometheus.Counter
	GeocodeFailuresTotal    prometheus.Counter

	// Sub-order finalization
	SubOrdersFinalizedTotal prometheus.CounterVec
	SurchargeAmountTotal    prometheus.CounterVec
	FinalizeErrorsTotal     prometheus.Counter
}

func NewAllocationMetrics() *AllocationMetrics {
	return &AllocationMetrics{
		VendorSelectionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendor_selections_total",
				Help: "Vendor selections by tie-break rule",
			},
			[]string{"rule"},
		),

		VendorSelectionEmptyTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "vendor_selections_empty_total",
				Help: "Selection calls that produced no eligible vendor",
			},
		),

		VendorSelectionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vendor_selection_duration_seconds",
				Help:    "Time spent selecting a vendor for a product",
				Buckets: prometheus.DefBuckets,
			},
		),

		ChannelFallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "seller_channel_fallbacks_total",
				Help: "Order lines resolved via the first-available-channel fallback",
			},
		),

		GeocodeCacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "geocode_cache_hits_total",
				Help: "Geocode lookups served from the coordinate cache",
			},
		),

		GeocodeCacheMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "geocode_cache_misses_total",
				Help: "Geocode lookups that required an external call",
			},
		),

		GeocodeFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "geocode_failures_total",
				Help: "External geocoding calls that failed or timed out",
			},
		),

		SubOrdersFinalizedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "suborders_finalized_total",
				Help: "Finalized sub-orders by servicing scenario",
			},
			[]string{"scenario"},
		),

		SurchargeAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surcharge_amount_total",
				Help: "Allocated fee amounts in minor units by receiving party",
			},
			[]string{"party"},
		),

		FinalizeErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "suborder_finalize_errors_total",
				Help: "Sub-orders blocked during finalization",
			},
		),
	}
}
