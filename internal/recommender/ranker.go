package recommender

import "sort"

// rankedRow es una fila del catálogo con su score final.
type rankedRow struct {
	Row   int
	Score float64
}

// rank mezcla los scores de contenido con los del perfil, filtra filas
// excluidas, ordena descendente y trunca a topN.
//
//   - final = (1-weight)*base + weight*profile, solo si hay perfil y
//     weight > 0; sin perfil se degrada a contenido puro sin error.
//   - El orden es estable: empates se resuelven por orden de catálogo.
//   - topN mayor que los candidatos elegibles devuelve todos, sin relleno.
func rank(
	base []float64,
	profile []float64,
	weight float64,
	excludeRow int, // -1 = sin exclusión por fila
	excludeTitles map[string]bool,
	titleOf func(row int) string,
	topN int,
) []rankedRow {

	final := base
	if profile != nil && weight > 0 {
		final = make([]float64, len(base))
		for i := range base {
			final[i] = (1-weight)*base[i] + weight*profile[i]
		}
	}

	rows := make([]rankedRow, len(final))
	for i, s := range final {
		rows[i] = rankedRow{Row: i, Score: s}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })

	out := make([]rankedRow, 0, topN)
	for _, r := range rows {
		if r.Row == excludeRow {
			continue
		}
		if excludeTitles != nil && excludeTitles[titleOf(r.Row)] {
			continue
		}
		out = append(out, r)
		if len(out) >= topN {
			break
		}
	}
	return out
}
