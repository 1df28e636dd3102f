package models

// RecItem es una recomendación ya formateada para la API.
// Score viene redondeado a 2 decimales.
type RecItem struct {
	Title      string  `json:"title"`
	Genres     string  `json:"genres"`
	Score      float64 `json:"score"`
	PosterPath string  `json:"poster_path,omitempty"`
	PosterURL  string  `json:"poster_url,omitempty"` // base URL + poster_path, lo arma la capa HTTP
	Overview   string  `json:"overview"`
}
