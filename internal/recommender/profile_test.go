package recommender

import (
	"testing"

	"cinerec/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileMatrix = [][]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

var profileIdx = map[string]int{"A": 0, "B": 1, "C": 2}

func TestBuildProfileLikesOnly(t *testing.T) {
	ratings := models.Ratings{"A": models.RatingLike, "B": models.RatingLike}

	p := BuildProfile(ratings, profileIdx, profileMatrix)
	require.NotNil(t, p)
	assert.InDelta(t, 0.5, p[0], 1e-9)
	assert.InDelta(t, 0.5, p[1], 1e-9)
	assert.InDelta(t, 0.0, p[2], 1e-9)
}

func TestBuildProfileDislikePenalty(t *testing.T) {
	ratings := models.Ratings{"A": models.RatingLike, "C": models.RatingDislike}

	p := BuildProfile(ratings, profileIdx, profileMatrix)
	require.NotNil(t, p)
	assert.InDelta(t, 1.0, p[0], 1e-9)
	// dislike pesa la mitad y resta
	assert.InDelta(t, -0.5, p[2], 1e-9)
}

func TestBuildProfileNoLikes(t *testing.T) {
	assert.Nil(t, BuildProfile(models.Ratings{}, profileIdx, profileMatrix))
	assert.Nil(t, BuildProfile(models.Ratings{"C": models.RatingDislike}, profileIdx, profileMatrix))
}

func TestBuildProfileSkipsUnknownTitles(t *testing.T) {
	// títulos rateados que ya no están en el catálogo se saltan
	ratings := models.Ratings{
		"A":       models.RatingLike,
		"borrada": models.RatingLike,
		"tampoco": models.RatingDislike,
	}

	p := BuildProfile(ratings, profileIdx, profileMatrix)
	require.NotNil(t, p)
	assert.InDelta(t, 1.0, p[0], 1e-9)

	// si ningún like resuelve, no hay perfil
	assert.Nil(t, BuildProfile(models.Ratings{"borrada": models.RatingLike}, profileIdx, profileMatrix))
}
