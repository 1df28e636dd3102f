package service

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"cinerec/internal/models"
	"cinerec/internal/recommender"
	"cinerec/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *RecommendService {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := csv.NewWriter(f)
	require.NoError(t, w.Write([]string{
		"id", "title", "genres", "keywords", "overview", "release_date",
		"vote_average", "vote_count", "popularity", "runtime", "poster_path",
	}))
	rows := [][4]string{
		{"Alpha", "Action", "heist", "A crew plans a heist"},
		{"Beta", "Action", "heist, car chase", "A driver escapes a heist"},
		{"Gamma", "Drama", "family", "A family drama"},
		{"Delta", "Drama", "family", "Another family drama"},
	}
	for i, r := range rows {
		require.NoError(t, w.Write([]string{
			strconv.Itoa(i + 1), r[0], r[1], r[2], r[3], "", "0", "0", "0", "0", "",
		}))
	}
	w.Flush()
	require.NoError(t, w.Error())
	require.NoError(t, f.Close())

	e, err := recommender.NewEngine(path,
		store.NewUserMovieStore(filepath.Join(dir, "user_movies.json")),
		store.NewRatingStore(filepath.Join(dir, "user_ratings.json")))
	require.NoError(t, err)
	require.NoError(t, e.Fit())

	return NewRecommendService(e)
}

func TestClampK(t *testing.T) {
	assert.Equal(t, DefaultK, clampK(0))
	assert.Equal(t, DefaultK, clampK(-3))
	assert.Equal(t, 7, clampK(7))
	assert.Equal(t, MaxK, clampK(1000))
}

func TestByMovieAppliesDefaults(t *testing.T) {
	svc := newTestService(t)

	// K=0 usa el default; sin Redis configurado el cache es no-op
	items, err := svc.ByMovie(context.Background(), ByMovieRequest{Title: "Alpha"})
	require.NoError(t, err)
	assert.NotEmpty(t, items)
	assert.LessOrEqual(t, len(items), DefaultK)
}

func TestByKeywordsPassThrough(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.ByKeywords(context.Background(), ByKeywordsRequest{Query: "heist", K: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestPersonalWithoutProfile(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.Personal(context.Background(), PersonalRequest{})
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, svc.Engine().SaveRating("Gamma", models.RatingLike))
	items, err = svc.Personal(context.Background(), PersonalRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}
