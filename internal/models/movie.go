package models

// Movie es una fila del catálogo (mismas columnas que el CSV base).
// Las películas agregadas por el usuario usan el mismo formato en el
// JSON durable, con valores numéricos por defecto y sin poster.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Genres      string  `json:"genres"`   // lista separada por comas
	Keywords    string  `json:"keywords"` // lista separada por comas, texto libre
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	Runtime     float64 `json:"runtime,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
}

// Valores por defecto para películas agregadas por el usuario.
const (
	DefaultPopularity  = 50
	DefaultVoteCount   = 1
	DefaultVoteAverage = 0
)

// CombinedFeatures concatena los campos de texto usados para vectorizar.
// Nunca se persiste: se recalcula en cada fit.
func (m Movie) CombinedFeatures() string {
	return m.Genres + " " + m.Keywords + " " + m.Overview
}

// Payload para crear una película vía API.
type MovieCreateRequest struct {
	Title    string   `json:"title"` // obligatorio
	Genres   []string `json:"genres,omitempty"`
	Keywords string   `json:"keywords,omitempty"`
	Overview string   `json:"overview,omitempty"`
}

// CatalogStats resume el estado del catálogo para el dashboard.
type CatalogStats struct {
	Movies     int `json:"movies"`
	UserMovies int `json:"userMovies"`
	VocabTerms int `json:"vocabTerms"`
}
