package recommender

import "math"

// Cosine calcula la similitud coseno entre dos vectores. Un vector de
// magnitud cero (query fuera de vocabulario, por ejemplo) da 0 contra
// todo, no error. El resultado queda acotado a [-1, 1].
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if sim > 1 {
		sim = 1
	} else if sim < -1 {
		sim = -1
	}
	return sim
}

// scoreAll devuelve la similitud del query contra cada fila de la matriz.
func scoreAll(query []float64, matrix [][]float64) []float64 {
	scores := make([]float64, len(matrix))
	for i, row := range matrix {
		scores[i] = Cosine(query, row)
	}
	return scores
}
