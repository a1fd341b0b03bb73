package recommender

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrunoSoussa/k-means-recomendation/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture: A e B com vetores de avaliação idênticos, C ortogonal.
func fixtureFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	booksPath := filepath.Join(dir, "books.csv")
	require.NoError(t, os.WriteFile(booksPath, []byte(
		"ISBN;Book-Title;Book-Author\n"+
			"1;A;Autor Um\n"+
			"2;B;Autor Dois\n"+
			"3;C;Autor Tres\n"), 0o644))

	ratingsPath := filepath.Join(dir, "ratings.csv")
	require.NoError(t, os.WriteFile(ratingsPath, []byte(
		"User-ID;ISBN;Book-Rating\n"+
			"1;1;5\n"+
			"2;1;3\n"+
			"1;2;5\n"+
			"2;2;3\n"+
			"3;3;4\n"), 0o644))

	return booksPath, ratingsPath
}

func newFixture(t *testing.T) *BookRecommender {
	t.Helper()
	booksPath, ratingsPath := fixtureFiles(t)
	rec, err := New(Params{BooksFile: booksPath, RatingsFile: ratingsPath})
	require.NoError(t, err)
	return rec
}

func TestGetRecommendationsScenario(t *testing.T) {
	rec := newFixture(t)

	items, err := rec.GetRecommendations("A", 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "B", items[0].Title)
	assert.InDelta(t, 1.0, items[0].SimilarityScore, 1e-9)
	assert.Equal(t, "C", items[1].Title)
	assert.InDelta(t, 0.0, items[1].SimilarityScore, 1e-9)
}

func TestGetRecommendationsNeverReturnsQueriedBook(t *testing.T) {
	rec := newFixture(t)

	items, err := rec.GetRecommendations("B", 10)
	require.NoError(t, err)
	for _, it := range items {
		assert.NotEqual(t, "B", it.Title)
	}
}

func TestGetRecommendationsOrderedAndBounded(t *testing.T) {
	rec := newFixture(t)

	items, err := rec.GetRecommendations("A", 10)
	require.NoError(t, err)
	// nunca mais que linhas-1
	require.Len(t, items, 2)

	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].SimilarityScore, items[i].SimilarityScore)
	}
	for _, it := range items {
		assert.GreaterOrEqual(t, it.SimilarityScore, 0.0)
		assert.LessOrEqual(t, it.SimilarityScore, 1.0)
	}
}

func TestGetRecommendationsIdempotent(t *testing.T) {
	rec := newFixture(t)

	first, err := rec.GetRecommendations("A", 2)
	require.NoError(t, err)
	second, err := rec.GetRecommendations("A", 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetRecommendationsBookNotFound(t *testing.T) {
	rec := newFixture(t)

	_, err := rec.GetRecommendations("Livro Inexistente", 2)

	var notFound *BookNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Livro Inexistente", notFound.Title)

	// match é case-sensitive, sem busca aproximada
	_, err = rec.GetRecommendations("a", 2)
	require.ErrorAs(t, err, &notFound)
}

func TestGetRecommendationsInvalidN(t *testing.T) {
	rec := newFixture(t)

	_, err := rec.GetRecommendations("A", 0)

	var badArg *InvalidArgumentError
	require.ErrorAs(t, err, &badArg)

	_, err = rec.GetRecommendations("A", -3)
	require.ErrorAs(t, err, &badArg)
}

func TestNewInsufficientData(t *testing.T) {
	booksPath, ratingsPath := fixtureFiles(t)

	_, err := New(Params{
		BooksFile:      booksPath,
		RatingsFile:    ratingsPath,
		MinBookRatings: 100,
		MinUserRatings: 100,
	})

	var insufficient *dataset.InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
}

func TestNewMissingFile(t *testing.T) {
	booksPath, _ := fixtureFiles(t)

	_, err := New(Params{
		BooksFile:   booksPath,
		RatingsFile: filepath.Join(t.TempDir(), "nada.csv"),
	})

	var loadErr *dataset.DataLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestSummaryAndCatalog(t *testing.T) {
	rec := newFixture(t)

	sum := rec.Summary()
	assert.Equal(t, 3, sum.BooksLoaded)
	assert.Equal(t, 5, sum.RatingsLoaded)
	assert.Equal(t, 3, sum.MatrixRows)
	assert.Equal(t, 3, sum.MatrixCols)
	assert.Equal(t, 5, sum.MatrixNonZeros)

	catalog := rec.Catalog()
	require.Len(t, catalog, 3)
	assert.Equal(t, "A", catalog[0].Title)
	assert.Equal(t, "Autor Um", catalog[0].Author)
	assert.Equal(t, 2, catalog[0].RatingsCount)
}
