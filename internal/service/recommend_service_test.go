package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrunoSoussa/k-means-recomendation/internal/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureHolder(t *testing.T) *RecommenderHolder {
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

	rec, err := recommender.New(recommender.Params{BooksFile: booksPath, RatingsFile: ratingsPath})
	require.NoError(t, err)
	return NewRecommenderHolder(rec)
}

// sem Redis nem Mongo: cache vira no-op e histórico fica desligado
func TestRecommendWithoutCacheAndHistory(t *testing.T) {
	svc := NewRecommendService(fixtureHolder(t), nil)

	items, err := svc.Recommend(context.Background(), RecRequest{Title: "A", K: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Title)
}

func TestRecommendClampsK(t *testing.T) {
	svc := NewRecommendService(fixtureHolder(t), nil)

	// K <= 0 vira DefaultK (e a fachada limita ao tamanho do catálogo)
	items, err := svc.Recommend(context.Background(), RecRequest{Title: "A", K: 0})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// K > MaxK é truncado, não rejeitado
	items, err = svc.Recommend(context.Background(), RecRequest{Title: "A", K: MaxK + 1000})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRecommendPropagatesNotFound(t *testing.T) {
	svc := NewRecommendService(fixtureHolder(t), nil)

	_, err := svc.Recommend(context.Background(), RecRequest{Title: "Nada", K: 2})
	assert.Error(t, err)
}

func TestHistoryWithoutMongo(t *testing.T) {
	svc := NewRecommendService(fixtureHolder(t), nil)

	list, err := svc.History(context.Background(), "A", 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCacheKeyStablePerTitleAndK(t *testing.T) {
	a := cacheKey(RecRequest{Title: "Jewel", K: 5})
	b := cacheKey(RecRequest{Title: "Jewel", K: 5})
	c := cacheKey(RecRequest{Title: "Jewel", K: 6})
	d := cacheKey(RecRequest{Title: "Outro", K: 5})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}
