package handler

import (
	"net/http"
	"strconv"
	"time"

	"cinerec/internal/models"
	"cinerec/internal/service"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
	// base para armar poster_url (concatenación de presentación,
	// el core solo guarda el path relativo)
	posterBase string
}

func NewRecommendHandler(s *service.RecommendService, posterBase string) *RecommendHandler {
	return &RecommendHandler{svc: s, posterBase: posterBase}
}

func (h *RecommendHandler) withPosterURL(items []models.RecItem) []models.RecItem {
	if items == nil {
		return []models.RecItem{}
	}
	for i := range items {
		if items[i].PosterPath != "" {
			items[i].PosterURL = h.posterBase + items[i].PosterPath
		}
	}
	return items
}

// @Summary Películas similares a una dada
// @Tags recommend
// @Produce json
// @Param title query string true "título exacto (ausente del catálogo = lista vacía)"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param profile_weight query number false "mezcla con el perfil, 0..1"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /recommendations/by-movie [get]
func (h *RecommendHandler) ByMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "falta el query param title", 400)
		return
	}
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	weight, _ := strconv.ParseFloat(r.URL.Query().Get("profile_weight"), 64)
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.ByMovie(r.Context(), service.ByMovieRequest{
		Title:         title,
		K:             k,
		ProfileWeight: weight,
		Refresh:       refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(h.withPosterURL(items))
}

// @Summary Recomendaciones por texto libre (fragmentos separados por coma)
// @Tags recommend
// @Produce json
// @Param q query string true "preferencias, ej: Action, Space, Robots"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param profile_weight query number false "mezcla con el perfil, 0..1"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /recommendations/by-keywords [get]
func (h *RecommendHandler) ByKeywords(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "falta el query param q", 400)
		return
	}
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	weight, _ := strconv.ParseFloat(r.URL.Query().Get("profile_weight"), 64)
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.ByKeywords(r.Context(), service.ByKeywordsRequest{
		Query:         query,
		K:             k,
		ProfileWeight: weight,
		Refresh:       refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(h.withPosterURL(items))
}

// @Summary Recomendaciones personales por perfil de likes/dislikes
// @Tags recommend
// @Produce json
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /recommendations/personal [get]
func (h *RecommendHandler) Personal(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.Personal(r.Context(), service.PersonalRequest{K: k, Refresh: refresh})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(h.withPosterURL(items))
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param title query string false "si viene, recomienda por película; si no, personal"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param profile_weight query number false "mezcla con el perfil, 0..1"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) RecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	title := r.URL.Query().Get("title")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	weight, _ := strconv.ParseFloat(r.URL.Query().Get("profile_weight"), 64)

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando cálculo…",
	})

	var items []models.RecItem
	if title != "" {
		items, err = h.svc.ByMovie(r.Context(), service.ByMovieRequest{
			Title: title, K: k, ProfileWeight: weight,
		})
	} else {
		items, err = h.svc.Personal(r.Context(), service.PersonalRequest{K: k})
	}
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"items":       h.withPosterURL(items),
		"generatedAt": time.Now(),
	})
}
