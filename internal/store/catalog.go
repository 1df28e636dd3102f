package store

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cinerec/internal/models"
)

// Columnas que el CSV base debe traer (por nombre, no por posición).
var requiredColumns = []string{
	"id", "title", "genres", "keywords", "overview",
	"release_date", "vote_average", "vote_count",
	"popularity", "runtime", "poster_path",
}

// LoadCatalog lee el catálogo base desde un CSV. Si el archivo no existe
// es error fatal para el arranque (sin catálogo no hay sistema).
// Campos de texto vacíos se quedan como "" y no son error.
func LoadCatalog(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catálogo base no encontrado: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(bufio.NewReader(f))
	rd.FieldsPerRecord = -1

	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo cabecera de %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("columna requerida %q ausente en %s", name, path)
		}
	}

	field := func(rec []string, name string) string {
		idx := cols[name]
		if idx >= len(rec) {
			return ""
		}
		return rec[idx]
	}

	var out []models.Movie
	for {
		rec, err := rd.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("leyendo fila de %s: %w", path, err)
		}

		id, _ := strconv.Atoi(strings.TrimSpace(field(rec, "id")))
		voteAvg, _ := strconv.ParseFloat(field(rec, "vote_average"), 64)
		voteCount, _ := strconv.Atoi(strings.TrimSpace(field(rec, "vote_count")))
		popularity, _ := strconv.ParseFloat(field(rec, "popularity"), 64)
		runtime, _ := strconv.ParseFloat(field(rec, "runtime"), 64)

		out = append(out, models.Movie{
			ID:          id,
			Title:       field(rec, "title"),
			Genres:      field(rec, "genres"),
			Keywords:    field(rec, "keywords"),
			Overview:    field(rec, "overview"),
			ReleaseDate: field(rec, "release_date"),
			VoteAverage: voteAvg,
			VoteCount:   voteCount,
			Popularity:  popularity,
			Runtime:     runtime,
			PosterPath:  field(rec, "poster_path"),
		})
	}

	return out, nil
}
