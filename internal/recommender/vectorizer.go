package recommender

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Parámetros por defecto del vocabulario.
const (
	DefaultMaxFeatures = 5000
	DefaultMinDF       = 2
	DefaultMaxDF       = 0.8
)

// Vectorizer convierte texto en vectores TF-IDF sobre un vocabulario
// aprendido en Fit. Extrae unigramas y bigramas, saca stopwords y
// aplica límites de frecuencia documental. No hay update incremental:
// si cambia el corpus hay que volver a llamar Fit.
type Vectorizer struct {
	MaxFeatures int     // tope de términos del vocabulario
	MinDF       int     // mínimo de documentos donde debe aparecer un término
	MaxDF       float64 // fracción máxima de documentos donde puede aparecer

	terms []string
	index map[string]int
	idf   []float64
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		MaxFeatures: DefaultMaxFeatures,
		MinDF:       DefaultMinDF,
		MaxDF:       DefaultMaxDF,
	}
}

// VocabSize devuelve la cantidad de términos aprendidos (0 antes de Fit
// o con corpus degenerado).
func (v *Vectorizer) VocabSize() int { return len(v.terms) }

// Fit construye el vocabulario desde el corpus y devuelve un vector
// por documento, en el mismo orden. Corpus vacío o solo-stopwords
// produce vocabulario vacío y vectores de largo cero, no error.
func (v *Vectorizer) Fit(docs []string) [][]float64 {
	n := len(docs)

	docCounts := make([]map[string]int, n)
	df := make(map[string]int)
	corpusFreq := make(map[string]int)

	for i, doc := range docs {
		counts := termCounts(doc)
		docCounts[i] = counts
		for term, c := range counts {
			df[term]++
			corpusFreq[term] += c
		}
	}

	// Límites de frecuencia documental. El techo por fracción se
	// apoya en MinDF: con corpus muy chicos 0.8*n quedaría debajo
	// del mínimo y vaciaría el vocabulario entero.
	maxDocs := int(v.MaxDF * float64(n))
	if maxDocs < v.MinDF {
		maxDocs = v.MinDF
	}

	candidates := make([]string, 0, len(df))
	for term, d := range df {
		if d >= v.MinDF && d <= maxDocs {
			candidates = append(candidates, term)
		}
	}

	// Tope de vocabulario: se quedan los términos con mayor frecuencia
	// total en el corpus, desempate alfabético.
	if v.MaxFeatures > 0 && len(candidates) > v.MaxFeatures {
		sort.Slice(candidates, func(i, j int) bool {
			fi, fj := corpusFreq[candidates[i]], corpusFreq[candidates[j]]
			if fi != fj {
				return fi > fj
			}
			return candidates[i] < candidates[j]
		})
		candidates = candidates[:v.MaxFeatures]
	}
	sort.Strings(candidates)

	v.terms = candidates
	v.index = make(map[string]int, len(candidates))
	for i, term := range candidates {
		v.index[term] = i
	}

	// IDF suavizado: ln((1+n)/(1+df)) + 1
	v.idf = make([]float64, len(candidates))
	for i, term := range candidates {
		v.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	matrix := make([][]float64, n)
	for i, counts := range docCounts {
		matrix[i] = v.vectorize(counts)
	}
	return matrix
}

// Transform mapea textos arbitrarios al espacio ya aprendido.
// Términos fuera del vocabulario aportan peso cero.
func (v *Vectorizer) Transform(texts []string) [][]float64 {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = v.vectorize(termCounts(text))
	}
	return out
}

// vectorize arma un vector TF-IDF normalizado (L2) desde conteos.
func (v *Vectorizer) vectorize(counts map[string]int) []float64 {
	vec := make([]float64, len(v.terms))
	for term, c := range counts {
		if idx, ok := v.index[term]; ok {
			vec[idx] = float64(c) * v.idf[idx]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// termCounts tokeniza y cuenta unigramas + bigramas de un texto.
func termCounts(text string) map[string]int {
	tokens := tokenize(text)
	counts := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		counts[tok]++
		if i+1 < len(tokens) {
			counts[tok+" "+tokens[i+1]]++
		}
	}
	return counts
}

// tokenize baja a minúsculas y corta por caracteres no alfanuméricos.
// Tokens de un solo caracter y stopwords quedan fuera (los bigramas se
// forman después del filtro, igual que en los vectorizadores clásicos).
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < 2 || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
