package recommender

import "cinerec/internal/models"

// Pesos del perfil: los likes mandan, los dislikes penalizan a la mitad.
const (
	profileAlpha = 1.0
	profileBeta  = 0.5
)

// BuildProfile agrega los vectores de películas con like/dislike en un
// único vector de preferencia: alpha*media(likes) - beta*media(dislikes).
// Devuelve nil si ningún like resuelve a una fila del catálogo (sin
// likes no hay perfil). Títulos rateados que ya no existen en el
// catálogo se saltan en silencio.
func BuildProfile(ratings models.Ratings, titleIdx map[string]int, matrix [][]float64) []float64 {
	var likeRows, dislikeRows []int
	for title, rating := range ratings {
		idx, ok := titleIdx[title]
		if !ok {
			continue
		}
		switch rating {
		case models.RatingLike:
			likeRows = append(likeRows, idx)
		case models.RatingDislike:
			dislikeRows = append(dislikeRows, idx)
		}
	}

	if len(likeRows) == 0 {
		return nil
	}

	likeVec := meanRows(matrix, likeRows)
	profile := make([]float64, len(likeVec))
	for i, x := range likeVec {
		profile[i] = profileAlpha * x
	}

	if len(dislikeRows) > 0 {
		dislikeVec := meanRows(matrix, dislikeRows)
		for i, x := range dislikeVec {
			profile[i] -= profileBeta * x
		}
	}

	return profile
}

func meanRows(matrix [][]float64, rows []int) []float64 {
	if len(rows) == 0 || len(matrix) == 0 {
		return nil
	}

	mean := make([]float64, len(matrix[rows[0]]))
	for _, r := range rows {
		for i, x := range matrix[r] {
			mean[i] += x
		}
	}
	for i := range mean {
		mean[i] /= float64(len(rows))
	}
	return mean
}
