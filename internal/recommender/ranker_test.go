package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSortsDescending(t *testing.T) {
	base := []float64{0.1, 0.9, 0.5}

	out := rank(base, nil, 0, -1, nil, nil, 3)
	require.Len(t, out, 3)
	assert.Equal(t, 1, out[0].Row)
	assert.Equal(t, 2, out[1].Row)
	assert.Equal(t, 0, out[2].Row)
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	base := []float64{0.5, 0.5, 0.5, 0.9}

	out := rank(base, nil, 0, -1, nil, nil, 4)
	require.Len(t, out, 4)
	assert.Equal(t, []int{3, 0, 1, 2}, []int{out[0].Row, out[1].Row, out[2].Row, out[3].Row})
}

func TestRankExcludesRow(t *testing.T) {
	base := []float64{0.9, 0.5, 0.1}

	out := rank(base, nil, 0, 0, nil, nil, 3)
	require.Len(t, out, 2)
	for _, r := range out {
		assert.NotEqual(t, 0, r.Row)
	}
}

func TestRankExcludesTitles(t *testing.T) {
	base := []float64{0.9, 0.5, 0.1}
	titles := []string{"A", "B", "C"}

	out := rank(base, nil, 0, -1, map[string]bool{"A": true, "C": true},
		func(row int) string { return titles[row] }, 3)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Row)
}

func TestRankTruncates(t *testing.T) {
	base := []float64{0.1, 0.2, 0.3, 0.4}

	out := rank(base, nil, 0, -1, nil, nil, 2)
	assert.Len(t, out, 2)

	// topN mayor que los candidatos: devuelve todos, sin relleno
	out = rank(base, nil, 0, -1, nil, nil, 100)
	assert.Len(t, out, 4)
}

func TestRankBlend(t *testing.T) {
	base := []float64{1.0, 0.0}
	profile := []float64{0.0, 1.0}

	// peso 0.5: final = 0.5*base + 0.5*profile
	out := rank(base, profile, 0.5, -1, nil, nil, 2)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.5, out[0].Score, 1e-9)
	assert.InDelta(t, 0.5, out[1].Score, 1e-9)

	// peso 0 ignora el perfil por completo
	out = rank(base, profile, 0, -1, nil, nil, 2)
	assert.Equal(t, 0, out[0].Row)
	assert.InDelta(t, 1.0, out[0].Score, 1e-9)

	// sin perfil, cualquier peso degrada a contenido puro
	out = rank(base, nil, 0.9, -1, nil, nil, 2)
	assert.Equal(t, 0, out[0].Row)
	assert.InDelta(t, 1.0, out[0].Score, 1e-9)
}
