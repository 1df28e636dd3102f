package handler

import (
	"net/http"

	"cinerec/internal/models"
	"cinerec/internal/recommender"

	json "github.com/goccy/go-json"
)

type MovieHandler struct {
	engine *recommender.Engine
}

func NewMovieHandler(e *recommender.Engine) *MovieHandler {
	return &MovieHandler{engine: e}
}

// @Summary Todos los títulos del catálogo
// @Tags movies
// @Produce json
// @Success 200 {array} string
// @Router /movies/titles [get]
func (h *MovieHandler) GetTitles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.Titles())
}

// @Summary Géneros únicos del catálogo (ordenados)
// @Tags movies
// @Produce json
// @Success 200 {array} string
// @Router /movies/genres [get]
func (h *MovieHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.Genres())
}

// @Summary Películas agregadas por el usuario
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies/user [get]
func (h *MovieHandler) GetUserMovies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movies := h.engine.UserMovies()
	if movies == nil {
		movies = []models.Movie{}
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Agregar una película al catálogo
// @Tags movies
// @Accept json
// @Param body body models.MovieCreateRequest true "película"
// @Success 201
// @Failure 409 {string} string "título duplicado"
// @Router /movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.MovieCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if req.Title == "" {
		http.Error(w, "title es obligatorio", 400)
		return
	}

	added, err := h.engine.AddMovie(req.Title, req.Genres, req.Keywords, req.Overview)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if !added {
		http.Error(w, "ya existe una película con ese título", http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"title": req.Title})
}

// @Summary Quitar una película agregada por el usuario
// @Tags movies
// @Param title query string true "título exacto"
// @Success 204
// @Failure 404 {string} string "no estaba en las del usuario"
// @Router /movies [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "falta el query param title", 400)
		return
	}

	removed, err := h.engine.RemoveMovie(title)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if !removed {
		http.Error(w, "la película no está entre las agregadas por el usuario", 404)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Borrar todas las películas del usuario
// @Tags movies
// @Success 204
// @Router /movies/user [delete]
func (h *MovieHandler) ClearUserMovies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.engine.ClearUserMovies(); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Resumen del catálogo (filas, vocabulario, películas del usuario)
// @Tags movies
// @Produce json
// @Success 200 {object} models.CatalogStats
// @Router /catalog/stats [get]
func (h *MovieHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.Stats())
}
