package knn

import (
	"testing"

	"github.com/BrunoSoussa/k-means-recomendation/internal/dataset"
	"github.com/BrunoSoussa/k-means-recomendation/internal/matrix"
	"github.com/BrunoSoussa/k-means-recomendation/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A=B (vetores idênticos), C ortogonal a ambos, D vazio (sem avaliações dos
// usuários filtrados não acontece na prática, mas norma zero precisa ser segura).
func fixtureIndex(t *testing.T) (*matrix.RatingMatrix, *Index) {
	t.Helper()

	books := []models.Book{
		{ISBN: "1", Title: "A", Author: "x"},
		{ISBN: "2", Title: "B", Author: "x"},
		{ISBN: "3", Title: "C", Author: "x"},
	}
	ratings := []models.Rating{
		{UserID: 1, ISBN: "1", Rating: 5},
		{UserID: 2, ISBN: "1", Rating: 3},
		{UserID: 1, ISBN: "2", Rating: 5},
		{UserID: 2, ISBN: "2", Rating: 3},
		{UserID: 3, ISBN: "3", Rating: 4},
	}

	fr, err := dataset.Filter(ratings, 0, 0)
	require.NoError(t, err)
	m := matrix.Build(books, ratings, fr)
	return m, Fit(m)
}

func TestQueryIdenticalAndOrthogonal(t *testing.T) {
	_, ix := fixtureIndex(t)

	// linha 0 = A; vizinhos: B (dist 0) e C (dist 1)
	nbs, err := ix.Query(0, 2)
	require.NoError(t, err)
	require.Len(t, nbs, 2)

	assert.Equal(t, 1, nbs[0].Row)
	assert.InDelta(t, 0.0, nbs[0].Distance, 1e-9)
	assert.Equal(t, 2, nbs[1].Row)
	assert.InDelta(t, 1.0, nbs[1].Distance, 1e-9)
}

func TestQueryExcludesSelf(t *testing.T) {
	_, ix := fixtureIndex(t)

	nbs, err := ix.Query(1, 10)
	require.NoError(t, err)
	for _, nb := range nbs {
		assert.NotEqual(t, 1, nb.Row)
	}
}

func TestQueryKLargerThanRows(t *testing.T) {
	_, ix := fixtureIndex(t)

	nbs, err := ix.Query(0, 50)
	require.NoError(t, err)
	// nunca mais que linhas-1
	assert.Len(t, nbs, 2)
}

func TestQueryDeterministicTieBreak(t *testing.T) {
	// B e C com vetores iguais entre si: distância igual até A,
	// desempate pela linha menor
	books := []models.Book{
		{ISBN: "1", Title: "A", Author: "x"},
		{ISBN: "2", Title: "B", Author: "x"},
		{ISBN: "3", Title: "C", Author: "x"},
	}
	ratings := []models.Rating{
		{UserID: 1, ISBN: "1", Rating: 5},
		{UserID: 1, ISBN: "2", Rating: 2},
		{UserID: 1, ISBN: "3", Rating: 2},
	}
	fr, err := dataset.Filter(ratings, 0, 0)
	require.NoError(t, err)
	ix := Fit(matrix.Build(books, ratings, fr))

	first, err := ix.Query(0, 2)
	require.NoError(t, err)
	second, err := ix.Query(0, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, first[0].Row)
	assert.Equal(t, 2, first[1].Row)
}

func TestQueryZeroNormRow(t *testing.T) {
	books := []models.Book{
		{ISBN: "1", Title: "A", Author: "x"},
		{ISBN: "2", Title: "B", Author: "x"},
	}
	ratings := []models.Rating{
		{UserID: 1, ISBN: "1", Rating: 5},
		{UserID: 2, ISBN: "2", Rating: 0}, // avaliação implícita: célula 0 descartável
		{UserID: 2, ISBN: "2", Rating: 0},
	}
	fr, err := dataset.Filter(ratings, 0, 0)
	require.NoError(t, err)
	ix := Fit(matrix.Build(books, ratings, fr))

	nbs, err := ix.Query(0, 1)
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	// similaridade 0 com vetor de norma zero
	assert.InDelta(t, 1.0, nbs[0].Distance, 1e-9)
}

func TestQueryRowOutOfRange(t *testing.T) {
	_, ix := fixtureIndex(t)

	_, err := ix.Query(99, 2)
	assert.Error(t, err)
}

func TestQueryNonPositiveK(t *testing.T) {
	_, ix := fixtureIndex(t)

	nbs, err := ix.Query(0, 0)
	require.NoError(t, err)
	assert.Empty(t, nbs)
}
