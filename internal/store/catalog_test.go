package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.csv",
		"id,title,genres,keywords,overview,release_date,vote_average,vote_count,popularity,runtime,poster_path\n"+
			"1,Alpha,Action,heist,A crew plans a heist,2001-05-02,7.1,1200,45.3,110,/alpha.jpg\n"+
			"2,Beta,\"Action, Crime\",,,,,,,,\n")

	movies, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, 1, movies[0].ID)
	assert.Equal(t, "Alpha", movies[0].Title)
	assert.Equal(t, "Action", movies[0].Genres)
	assert.Equal(t, 7.1, movies[0].VoteAverage)
	assert.Equal(t, 1200, movies[0].VoteCount)
	assert.Equal(t, "/alpha.jpg", movies[0].PosterPath)

	// campos de texto faltantes quedan vacíos, no son error
	assert.Equal(t, "Action, Crime", movies[1].Genres)
	assert.Empty(t, movies[1].Keywords)
	assert.Empty(t, movies[1].Overview)
	assert.Zero(t, movies[1].VoteCount)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "no_existe.csv"))
	require.Error(t, err)
}

func TestLoadCatalogMissingColumn(t *testing.T) {
	path := writeFile(t, "catalog.csv", "id,title,genres\n1,Alpha,Action\n")

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keywords")
}

func TestLoadCatalogEmpty(t *testing.T) {
	path := writeFile(t, "catalog.csv",
		"id,title,genres,keywords,overview,release_date,vote_average,vote_count,popularity,runtime,poster_path\n")

	movies, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Empty(t, movies)
}
