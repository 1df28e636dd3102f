package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"idénticos", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"escalados", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"ortogonales", []float64{1, 0}, []float64{0, 1}, 0},
		{"opuestos", []float64{1, 0}, []float64{-1, 0}, -1},
		{"query de magnitud cero", []float64{0, 0}, []float64{1, 2}, 0},
		{"ambos cero", []float64{0, 0}, []float64{0, 0}, 0},
		{"vectores vacíos", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineBounded(t *testing.T) {
	// acumulación en float puede pasarse apenas de 1; queda clampeado
	a := []float64{0.1, 0.2, 0.3, 0.4}
	s := Cosine(a, a)
	assert.LessOrEqual(t, s, 1.0)
	assert.GreaterOrEqual(t, s, -1.0)
}

func TestScoreAll(t *testing.T) {
	matrix := [][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
	}
	scores := scoreAll([]float64{1, 0}, matrix)

	require.Len(t, scores, 3)
	assert.InDelta(t, 1.0, scores[0], 1e-9)
	assert.InDelta(t, 0.0, scores[1], 1e-9)
	assert.Greater(t, scores[2], 0.0)
}
