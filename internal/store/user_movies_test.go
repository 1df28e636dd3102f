package store

import (
	"os"
	"path/filepath"
	"testing"

	"cinerec/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMovieStoreRoundTrip(t *testing.T) {
	s := NewUserMovieStore(filepath.Join(t.TempDir(), "user_movies.json"))

	// archivo ausente = lista vacía
	assert.Empty(t, s.Load())

	require.NoError(t, s.Append(models.Movie{ID: 10001, Title: "New", Genres: "Action"}))
	require.NoError(t, s.Append(models.Movie{ID: 10002, Title: "Otra", Genres: "Drama"}))

	movies := s.Load()
	require.Len(t, movies, 2)
	assert.Equal(t, "New", movies[0].Title)
	assert.Equal(t, 10002, movies[1].ID)
}

func TestUserMovieStoreRemoveByTitle(t *testing.T) {
	s := NewUserMovieStore(filepath.Join(t.TempDir(), "user_movies.json"))
	require.NoError(t, s.Append(models.Movie{ID: 1, Title: "New"}))
	require.NoError(t, s.Append(models.Movie{ID: 2, Title: "Otra"}))

	removed, err := s.RemoveByTitle("New")
	require.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, s.Load(), 1)

	// título ausente: false, sin error
	removed, err = s.RemoveByTitle("New")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestUserMovieStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_movies.json")
	s := NewUserMovieStore(path)
	require.NoError(t, s.Append(models.Movie{ID: 1, Title: "New"}))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Load())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clear sobre store ya vacío no es error
	require.NoError(t, s.Clear())
}

func TestUserMovieStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_movies.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es una lista"), 0o644))

	s := NewUserMovieStore(path)
	// contenido roto se trata como vacío y el store sigue usable
	assert.Empty(t, s.Load())
	require.NoError(t, s.Append(models.Movie{ID: 1, Title: "New"}))
	assert.Len(t, s.Load(), 1)
}

func TestUserMovieStoreNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	s := NewUserMovieStore(filepath.Join(dir, "user_movies.json"))
	require.NoError(t, s.Append(models.Movie{ID: 1, Title: "New"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user_movies.json", entries[0].Name())
}
