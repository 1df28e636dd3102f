package service

import (
	"context"
	"fmt"
	"log"

	"cinerec/internal/cache"
	"cinerec/internal/metrics"
	"cinerec/internal/models"
	"cinerec/internal/recommender"
)

const (
	DefaultK = 5
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems

	cacheTTLSeconds = 60 * 60
)

// RecommendService envuelve al motor con defaults, límites y cache.
// Las keys de cache llevan la generación del motor: cualquier mutación
// de catálogo o ratings deja las entradas viejas inalcanzables.
type RecommendService struct {
	engine *recommender.Engine
}

func NewRecommendService(e *recommender.Engine) *RecommendService {
	return &RecommendService{engine: e}
}

func (s *RecommendService) Engine() *recommender.Engine { return s.engine }

// ====== Peticiones (solo parámetros que cambian en runtime) ======

type ByMovieRequest struct {
	Title         string
	K             int
	ProfileWeight float64
	Refresh       bool
}

type ByKeywordsRequest struct {
	Query         string
	K             int
	ProfileWeight float64
	Refresh       bool
}

type PersonalRequest struct {
	K       int
	Refresh bool
}

func clampK(k int) int {
	if k <= 0 {
		return DefaultK
	}
	if k > MaxK {
		return MaxK
	}
	return k
}

func (s *RecommendService) ByMovie(ctx context.Context, req ByMovieRequest) ([]models.RecItem, error) {
	req.K = clampK(req.K)
	key := fmt.Sprintf("rec:g%d:movie:%s:k%d:w%.2f",
		s.engine.Generation(), req.Title, req.K, req.ProfileWeight)

	if items, ok := s.cached(ctx, key, req.Refresh); ok {
		return items, nil
	}

	items, err := s.engine.RecommendByMovie(req.Title, req.K, req.ProfileWeight)
	if err != nil {
		return nil, err
	}
	metrics.RecommendationsTotal.WithLabelValues("by_movie").Inc()

	s.store(ctx, key, items)
	return items, nil
}

func (s *RecommendService) ByKeywords(ctx context.Context, req ByKeywordsRequest) ([]models.RecItem, error) {
	req.K = clampK(req.K)
	key := fmt.Sprintf("rec:g%d:kw:%s:k%d:w%.2f",
		s.engine.Generation(), req.Query, req.K, req.ProfileWeight)

	if items, ok := s.cached(ctx, key, req.Refresh); ok {
		return items, nil
	}

	items, err := s.engine.RecommendByKeywords(req.Query, req.K, req.ProfileWeight)
	if err != nil {
		return nil, err
	}
	metrics.RecommendationsTotal.WithLabelValues("by_keywords").Inc()

	s.store(ctx, key, items)
	return items, nil
}

func (s *RecommendService) Personal(ctx context.Context, req PersonalRequest) ([]models.RecItem, error) {
	req.K = clampK(req.K)
	key := fmt.Sprintf("rec:g%d:personal:k%d", s.engine.Generation(), req.K)

	if items, ok := s.cached(ctx, key, req.Refresh); ok {
		return items, nil
	}

	items, err := s.engine.RecommendPersonal(req.K)
	if err != nil {
		return nil, err
	}
	metrics.RecommendationsTotal.WithLabelValues("personal").Inc()

	s.store(ctx, key, items)
	return items, nil
}

func (s *RecommendService) cached(ctx context.Context, key string, refresh bool) ([]models.RecItem, bool) {
	if refresh {
		return nil, false
	}
	var items []models.RecItem
	if ok, err := cache.GetJSON(ctx, key, &items); err == nil && ok {
		metrics.CacheTotal.WithLabelValues("hit").Inc()
		return items, true
	}
	metrics.CacheTotal.WithLabelValues("miss").Inc()
	return nil, false
}

func (s *RecommendService) store(ctx context.Context, key string, items []models.RecItem) {
	if err := cache.SetJSON(ctx, key, items, cacheTTLSeconds); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}
}
