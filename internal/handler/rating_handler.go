package handler

import (
	"errors"
	"net/http"

	"cinerec/internal/models"
	"cinerec/internal/recommender"

	json "github.com/goccy/go-json"
)

type RatingHandler struct {
	engine *recommender.Engine
}

func NewRatingHandler(e *recommender.Engine) *RatingHandler {
	return &RatingHandler{engine: e}
}

// @Summary Ratings actuales (título -> like/dislike)
// @Tags ratings
// @Produce json
// @Success 200 {object} models.Ratings
// @Router /ratings [get]
func (h *RatingHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.Ratings())
}

// @Summary Crear/actualizar rating
// @Tags ratings
// @Accept json
// @Param body body models.RatingRequest true "rating"
// @Success 204
// @Failure 400 {string} string "rating inválido"
// @Router /ratings [post]
func (h *RatingHandler) Post(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if req.Title == "" {
		http.Error(w, "title es obligatorio", 400)
		return
	}

	if err := h.engine.SaveRating(req.Title, req.Rating); err != nil {
		if errors.Is(err, recommender.ErrInvalidRating) {
			http.Error(w, err.Error(), 400)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Borrar el rating de un título
// @Tags ratings
// @Param title query string true "título exacto"
// @Success 204
// @Failure 404 {string} string "no había rating para ese título"
// @Router /ratings [delete]
func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "falta el query param title", 400)
		return
	}

	removed, err := h.engine.RemoveRating(title)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if !removed {
		http.Error(w, "no hay rating para ese título", 404)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Borrar todos los ratings
// @Tags ratings
// @Success 204
// @Router /ratings/all [delete]
func (h *RatingHandler) Clear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.engine.ClearRatings(); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
