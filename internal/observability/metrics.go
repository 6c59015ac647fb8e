package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SuggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_suggestions_total",
			Help: "Total price suggestions computed",
		},
	)

	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_suggestion_cache_hits_total",
			Help: "Suggestions served from cache",
		},
	)

	ScrapeErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_scrape_errors_total",
			Help: "Scrape failures per data source",
		},
		[]string{"source"},
	)

	EstimatorFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_estimator_fallbacks_total",
			Help: "Suggestions that fell back to estimated data",
		},
	)

	ListingSkipsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_skips_total",
			Help: "Candidate containers skipped during extraction, by reason",
		},
		[]string{"reason"},
	)
)

func Start(port string) {
	prometheus.MustRegister(SuggestionsTotal, CacheHitsTotal, ScrapeErrorsTotal, EstimatorFallbacksTotal, ListingSkipsTotal)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
