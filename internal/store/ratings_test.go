package store

import (
	"os"
	"path/filepath"
	"testing"

	"cinerec/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingStoreRoundTrip(t *testing.T) {
	s := NewRatingStore(filepath.Join(t.TempDir(), "user_ratings.json"))

	// archivo ausente = mapa vacío
	assert.Empty(t, s.Load())

	require.NoError(t, s.Save(models.Ratings{
		"Alpha": models.RatingLike,
		"Beta":  models.RatingDislike,
	}))

	ratings := s.Load()
	assert.Equal(t, models.RatingLike, ratings["Alpha"])
	assert.Equal(t, models.RatingDislike, ratings["Beta"])

	// guardar vacío deja el archivo con {} y se lee como vacío
	require.NoError(t, s.Save(models.Ratings{}))
	assert.Empty(t, s.Load())
}

func TestRatingStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_ratings.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2,3]"), 0o644))

	s := NewRatingStore(path)
	assert.Empty(t, s.Load())

	// sigue usable después del contenido roto
	require.NoError(t, s.Save(models.Ratings{"Alpha": models.RatingLike}))
	assert.Len(t, s.Load(), 1)
}
