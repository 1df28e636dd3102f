package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	CatalogCSV     string
	UserMoviesJSON string
	RatingsJSON    string
	RedisAddr      string
	RedisPass      string
	PosterBaseURL  string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		CatalogCSV:     getEnv("CATALOG_CSV", "movies_top10k.csv"),
		UserMoviesJSON: getEnv("USER_MOVIES_JSON", "user_movies.json"),
		RatingsJSON:    getEnv("USER_RATINGS_JSON", "user_ratings.json"),
		// REDIS_ADDR vacío = cache deshabilitado (el motor funciona igual sin Redis)
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		PosterBaseURL: getEnv("POSTER_BASE_URL", "https://image.tmdb.org/t/p/w500"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}
