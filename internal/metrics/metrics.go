package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Colectores del proceso. Se registran en el registry por defecto y
// salen por /metrics.
var (
	RecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinerec_recommendations_total",
		Help: "Recomendaciones servidas por modo (by_movie, by_keywords, personal).",
	}, []string{"mode"})

	CacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinerec_cache_total",
		Help: "Lecturas del cache de recomendaciones (hit/miss).",
	}, []string{"result"})

	FitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cinerec_fit_duration_seconds",
		Help:    "Duración del fit del vectorizador sobre el catálogo completo.",
		Buckets: prometheus.DefBuckets,
	})

	CatalogMovies = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cinerec_catalog_movies",
		Help: "Películas en el catálogo en memoria (base + usuario).",
	})
)
