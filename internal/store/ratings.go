package store

import (
	"log"
	"os"

	"cinerec/internal/models"

	json "github.com/goccy/go-json"
)

// RatingStore persiste el mapa título -> like/dislike. Se reescribe
// completo en cada mutación (es chico y así queda siempre consistente).
type RatingStore struct {
	path string
}

func NewRatingStore(path string) *RatingStore {
	return &RatingStore{path: path}
}

// Load devuelve el mapa de ratings. Archivo ausente o malformado se
// trata como mapa vacío (con warning).
func (s *RatingStore) Load() models.Ratings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[store] warning: no se pudo leer %s: %v", s.path, err)
		}
		return models.Ratings{}
	}

	var ratings models.Ratings
	if err := json.Unmarshal(data, &ratings); err != nil {
		log.Printf("[store] warning: %s malformado, se ignora: %v", s.path, err)
		return models.Ratings{}
	}
	if ratings == nil {
		ratings = models.Ratings{}
	}
	return ratings
}

// Save persiste el mapa completo de forma atómica.
func (s *RatingStore) Save(ratings models.Ratings) error {
	if ratings == nil {
		ratings = models.Ratings{}
	}
	data, err := json.MarshalIndent(ratings, "", "    ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}
