package main

import (
	"log"
	"net/http"

	_ "cinerec/docs" // swagger docs

	"cinerec/internal/cache"
	"cinerec/internal/config"
	"cinerec/internal/handler"
	"cinerec/internal/recommender"
	"cinerec/internal/service"
	"cinerec/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineRec Content-Based Recommender API
// @version 1.0
// @description API de recomendación de películas por similitud de contenido (TF-IDF + coseno)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// cache opcional
	cache.InitRedis(cfg)

	// stores durables
	userMovies := store.NewUserMovieStore(cfg.UserMoviesJSON)
	ratings := store.NewRatingStore(cfg.RatingsJSON)

	// motor: una sola instancia para todo el proceso. El fit sobre el
	// catálogo completo es el costo dominante, nunca se rearma por request.
	engine, err := recommender.NewEngine(cfg.CatalogCSV, userMovies, ratings)
	if err != nil {
		log.Fatalf("[engine] error cargando catálogo: %v", err)
	}
	if err := engine.Fit(); err != nil {
		log.Fatalf("[engine] error en fit inicial: %v", err)
	}

	// services
	recSvc := service.NewRecommendService(engine)

	// handlers
	movieH := handler.NewMovieHandler(engine)
	ratingH := handler.NewRatingHandler(engine)
	recH := handler.NewRecommendHandler(recSvc, cfg.PosterBaseURL)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// catálogo
	r.Get("/movies/titles", movieH.GetTitles)
	r.Get("/movies/genres", movieH.GetGenres)
	r.Get("/movies/user", movieH.GetUserMovies)
	r.Post("/movies", movieH.Create)
	r.Delete("/movies", movieH.Delete)
	r.Delete("/movies/user", movieH.ClearUserMovies)
	r.Get("/catalog/stats", movieH.Stats)

	// ratings
	r.Get("/ratings", ratingH.Get)
	r.Post("/ratings", ratingH.Post)
	r.Delete("/ratings", ratingH.Delete)
	r.Delete("/ratings/all", ratingH.Clear)

	// recomendaciones
	r.Get("/recommendations/by-movie", recH.ByMovie)
	r.Get("/recommendations/by-keywords", recH.ByKeywords)
	r.Get("/recommendations/personal", recH.Personal)

	// WebSocket
	r.Get("/ws/recommendations", recH.RecommendationsWS)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
