package store

import (
	"log"
	"os"

	"cinerec/internal/models"

	json "github.com/goccy/go-json"
)

// UserMovieStore persiste las películas agregadas por el usuario como
// una lista JSON completa (se reescribe entera en cada mutación).
type UserMovieStore struct {
	path string
}

func NewUserMovieStore(path string) *UserMovieStore {
	return &UserMovieStore{path: path}
}

// Load devuelve todas las películas del usuario. Archivo ausente o
// contenido malformado se tratan como lista vacía (con warning),
// nunca como error para el caller.
func (s *UserMovieStore) Load() []models.Movie {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[store] warning: no se pudo leer %s: %v", s.path, err)
		}
		return nil
	}

	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		log.Printf("[store] warning: %s malformado, se ignora: %v", s.path, err)
		return nil
	}
	return movies
}

// Append agrega una película al final y persiste la lista completa.
func (s *UserMovieStore) Append(m models.Movie) error {
	movies := append(s.Load(), m)
	return s.writeAll(movies)
}

// RemoveByTitle saca una película por título (comparación literal).
// Devuelve false si no estaba.
func (s *UserMovieStore) RemoveByTitle(title string) (bool, error) {
	movies := s.Load()

	kept := movies[:0]
	for _, m := range movies {
		if m.Title != title {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(movies) {
		return false, nil
	}

	if err := s.writeAll(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Clear borra el archivo durable completo. Ausente cuenta como vacío.
func (s *UserMovieStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *UserMovieStore) writeAll(movies []models.Movie) error {
	if movies == nil {
		movies = []models.Movie{}
	}
	data, err := json.MarshalIndent(movies, "", "    ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}
