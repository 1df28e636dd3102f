package models

// Valores válidos de rating. Cualquier otro valor es error de programación
// (se rechaza con error, no se degrada).
const (
	RatingLike    = "like"
	RatingDislike = "dislike"
)

// Ratings mapea título -> like/dislike. Un rating por título;
// guardar de nuevo sobreescribe. Los títulos se comparan de forma
// literal (sensible a mayúsculas y espacios).
type Ratings map[string]string

// Payload para crear/actualizar un rating vía API.
type RatingRequest struct {
	Title  string `json:"title"`
	Rating string `json:"rating"` // like | dislike
}
