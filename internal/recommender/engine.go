package recommender

import (
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"cinerec/internal/metrics"
	"cinerec/internal/models"
	"cinerec/internal/store"
)

var (
	// ErrNotFitted: se pidió una recomendación sin haber entrenado.
	ErrNotFitted = errors.New("modelo no entrenado: hay que llamar Fit() primero")
	// ErrInvalidRating: valor de rating que no es like/dislike.
	// Es error de programación del caller, no estado de datos.
	ErrInvalidRating = errors.New(`rating inválido: debe ser "like" o "dislike"`)
)

// fittedModel empaqueta catálogo, matriz y índice de títulos que salen
// de un mismo fit. Se arma completo y se swapea de una, así ningún
// lector puede ver catálogo y matriz de tamaños distintos.
type fittedModel struct {
	movies   []models.Movie
	vectors  [][]float64
	titleIdx map[string]int // título -> fila (primera ocurrencia)
}

// Engine es el orquestador: dueño del catálogo, del vectorizador y de
// los vectores derivados. Una sola instancia viva por proceso; las
// mutaciones re-entrenan antes de devolver el control.
type Engine struct {
	mu sync.RWMutex

	catalogPath string
	userMovies  *store.UserMovieStore
	ratingStore *store.RatingStore

	vectorizer *Vectorizer
	movies     []models.Movie // catálogo base + agregadas por el usuario
	model      *fittedModel   // nil = sin entrenar
	ratings    models.Ratings
	generation uint64 // sube con cada mutación, para invalidar caches
}

// NewEngine carga catálogo base (error fatal si falta), películas del
// usuario y ratings (ambos tolerantes a datos rotos). Arranca sin
// entrenar: el caller debe llamar Fit antes de recomendar.
func NewEngine(catalogPath string, userMovies *store.UserMovieStore, ratingStore *store.RatingStore) (*Engine, error) {
	e := &Engine{
		catalogPath: catalogPath,
		userMovies:  userMovies,
		ratingStore: ratingStore,
		vectorizer:  NewVectorizer(),
		ratings:     ratingStore.Load(),
	}

	movies, err := e.loadAll()
	if err != nil {
		return nil, err
	}
	e.movies = movies
	return e, nil
}

// loadAll lee el CSV base y le concatena las películas del usuario.
func (e *Engine) loadAll() ([]models.Movie, error) {
	base, err := store.LoadCatalog(e.catalogPath)
	if err != nil {
		return nil, err
	}
	return append(base, e.userMovies.Load()...), nil
}

// Fit vectoriza el texto combinado de cada película y deja el motor
// listo para recomendar.
func (e *Engine) Fit() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fitLocked()
	return nil
}

func (e *Engine) fitLocked() {
	start := time.Now()

	docs := make([]string, len(e.movies))
	for i, m := range e.movies {
		docs[i] = m.CombinedFeatures()
	}

	vectors := e.vectorizer.Fit(docs)

	titleIdx := make(map[string]int, len(e.movies))
	for i, m := range e.movies {
		if _, ok := titleIdx[m.Title]; !ok {
			titleIdx[m.Title] = i
		}
	}

	e.model = &fittedModel{
		movies:   e.movies,
		vectors:  vectors,
		titleIdx: titleIdx,
	}
	e.generation++

	metrics.FitDuration.Observe(time.Since(start).Seconds())
	metrics.CatalogMovies.Set(float64(len(e.movies)))
	log.Printf("[engine] fit: %d películas, %d términos en %s",
		len(e.movies), e.vectorizer.VocabSize(), time.Since(start))
}

// ====== Recomendaciones ======

// RecommendByMovie: películas parecidas a la dada. Título ausente del
// catálogo devuelve lista vacía, no error. La película consultada
// nunca aparece en sus propios resultados.
func (e *Engine) RecommendByMovie(title string, topN int, profileWeight float64) ([]models.RecItem, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	m := e.model
	if m == nil {
		return nil, ErrNotFitted
	}

	idx, ok := m.titleIdx[title]
	if !ok {
		return []models.RecItem{}, nil
	}

	base := scoreAll(m.vectors[idx], m.vectors)
	profile := e.profileScoresLocked(m, profileWeight)

	ranked := rank(base, profile, profileWeight, idx, nil, nil, topN)
	return formatResults(m, ranked), nil
}

// RecommendByKeywords: texto libre separado por comas. Cada fragmento
// se transforma por separado y el score de una fila es el máximo entre
// fragmentos (con que matchee fuerte uno alcanza). Sin fragmentos no
// vacíos devuelve lista vacía.
func (e *Engine) RecommendByKeywords(text string, topN int, profileWeight float64) ([]models.RecItem, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	m := e.model
	if m == nil {
		return nil, ErrNotFitted
	}

	var fragments []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			fragments = append(fragments, part)
		}
	}
	if len(fragments) == 0 {
		return []models.RecItem{}, nil
	}

	base := make([]float64, len(m.vectors))
	for _, qvec := range e.vectorizer.Transform(fragments) {
		for i, row := range m.vectors {
			if s := Cosine(qvec, row); s > base[i] {
				base[i] = s
			}
		}
	}

	profile := e.profileScoresLocked(m, profileWeight)

	ranked := rank(base, profile, profileWeight, -1, nil, nil, topN)
	return formatResults(m, ranked), nil
}

// RecommendPersonal: ranking puro por perfil de preferencias. Sin
// perfil construible (ningún like que resuelva al catálogo) devuelve
// lista vacía. Los títulos ya rateados se excluyen del resultado.
func (e *Engine) RecommendPersonal(topN int) ([]models.RecItem, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	m := e.model
	if m == nil {
		return nil, ErrNotFitted
	}

	profile := BuildProfile(e.ratings, m.titleIdx, m.vectors)
	if profile == nil {
		return []models.RecItem{}, nil
	}

	scores := scoreAll(profile, m.vectors)

	rated := make(map[string]bool, len(e.ratings))
	for title := range e.ratings {
		rated[title] = true
	}

	ranked := rank(scores, nil, 0, -1, rated, func(row int) string {
		return m.movies[row].Title
	}, topN)
	return formatResults(m, ranked), nil
}

// profileScoresLocked calcula los scores de afinidad con el perfil,
// o nil si no hace falta (peso 0) o no hay perfil construible.
func (e *Engine) profileScoresLocked(m *fittedModel, weight float64) []float64 {
	if weight <= 0 {
		return nil
	}
	profile := BuildProfile(e.ratings, m.titleIdx, m.vectors)
	if profile == nil {
		return nil
	}
	return scoreAll(profile, m.vectors)
}

// HasProfile dice si hay perfil construible con los ratings actuales.
func (e *Engine) HasProfile() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return false
	}
	return BuildProfile(e.ratings, e.model.titleIdx, e.model.vectors) != nil
}

func formatResults(m *fittedModel, ranked []rankedRow) []models.RecItem {
	out := make([]models.RecItem, 0, len(ranked))
	for _, r := range ranked {
		mv := m.movies[r.Row]
		out = append(out, models.RecItem{
			Title:      mv.Title,
			Genres:     mv.Genres,
			Score:      math.Round(r.Score*100) / 100,
			PosterPath: mv.PosterPath,
			Overview:   mv.Overview,
		})
	}
	return out
}

// ====== Mutaciones de catálogo ======
// Todas re-entrenan antes de soltar el lock: desde afuera nunca se ve
// el motor en estado sin entrenar después de una mutación.

// AddMovie agrega una película del usuario. Devuelve false si ya existe
// una con ese título exacto (no es error). Persiste primero y después
// actualiza memoria + re-entrena.
func (e *Engine) AddMovie(title string, genres []string, keywords, overview string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, m := range e.movies {
		if m.Title == title {
			return false, nil
		}
	}

	maxID := 0
	for _, m := range e.movies {
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	movie := models.Movie{
		ID:          maxID + 1,
		Title:       title,
		Genres:      strings.Join(genres, ", "),
		Keywords:    keywords,
		Overview:    overview,
		Popularity:  models.DefaultPopularity,
		VoteCount:   models.DefaultVoteCount,
		VoteAverage: models.DefaultVoteAverage,
	}

	if err := e.userMovies.Append(movie); err != nil {
		return false, err
	}

	e.movies = append(e.movies, movie)
	e.fitLocked()
	return true, nil
}

// RemoveMovie saca una película del store del usuario (las del catálogo
// base no se tocan nunca). Devuelve false si no estaba ahí.
func (e *Engine) RemoveMovie(title string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.userMovies.RemoveByTitle(title)
	if err != nil || !removed {
		return false, err
	}

	movies, err := e.loadAll()
	if err != nil {
		return false, err
	}
	e.movies = movies
	e.fitLocked()
	return true, nil
}

// ClearUserMovies borra todas las películas del usuario y vuelve al
// catálogo base.
func (e *Engine) ClearUserMovies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.userMovies.Clear(); err != nil {
		return err
	}

	movies, err := e.loadAll()
	if err != nil {
		return err
	}
	e.movies = movies
	e.fitLocked()
	return nil
}

// ====== Ratings ======
// No tocan la matriz (el perfil se calcula on demand), así que no
// re-entrenan; solo persisten y suben la generación.

// SaveRating guarda like/dislike para un título, pisando el anterior.
func (e *Engine) SaveRating(title, rating string) error {
	if rating != models.RatingLike && rating != models.RatingDislike {
		return ErrInvalidRating
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.ratings[title] = rating
	if err := e.ratingStore.Save(e.ratings); err != nil {
		return err
	}
	e.generation++
	return nil
}

// RemoveRating borra el rating de un título. False si no había.
func (e *Engine) RemoveRating(title string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.ratings[title]; !ok {
		return false, nil
	}
	delete(e.ratings, title)
	if err := e.ratingStore.Save(e.ratings); err != nil {
		return false, err
	}
	e.generation++
	return true, nil
}

// ClearRatings vacía el mapa completo.
func (e *Engine) ClearRatings() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ratings = models.Ratings{}
	if err := e.ratingStore.Save(e.ratings); err != nil {
		return err
	}
	e.generation++
	return nil
}

// ====== Consultas de catálogo ======

// Titles devuelve todos los títulos en orden de catálogo.
func (e *Engine) Titles() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.movies))
	for _, m := range e.movies {
		if m.Title != "" {
			out = append(out, m.Title)
		}
	}
	return out
}

// Genres devuelve los géneros únicos del catálogo, ordenados.
func (e *Engine) Genres() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	seen := make(map[string]bool)
	for _, m := range e.movies {
		for _, g := range strings.Split(m.Genres, ",") {
			if g = strings.TrimSpace(g); g != "" {
				seen[g] = true
			}
		}
	}

	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Ratings devuelve una copia del mapa actual.
func (e *Engine) Ratings() models.Ratings {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(models.Ratings, len(e.ratings))
	for k, v := range e.ratings {
		out[k] = v
	}
	return out
}

// UserMovies lista las películas agregadas por el usuario.
func (e *Engine) UserMovies() []models.Movie {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.userMovies.Load()
}

// Stats resume el estado actual para el dashboard.
func (e *Engine) Stats() models.CatalogStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.CatalogStats{
		Movies:     len(e.movies),
		UserMovies: len(e.userMovies.Load()),
		VocabTerms: e.vectorizer.VocabSize(),
	}
}

// Generation identifica el estado actual de catálogo+ratings; cualquier
// mutación la sube. Sirve para armar keys de cache que caducan solas.
func (e *Engine) Generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.generation
}
