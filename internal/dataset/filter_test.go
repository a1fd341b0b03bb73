package dataset

import (
	"testing"

	"github.com/BrunoSoussa/k-means-recomendation/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(user int, isbn string) models.Rating {
	return models.Rating{UserID: user, ISBN: isbn, Rating: 5}
}

func TestFilterThresholds(t *testing.T) {
	ratings := []models.Rating{
		rating(1, "A"), rating(1, "B"),
		rating(2, "A"), rating(2, "B"),
		rating(3, "A"), // usuário com 1 avaliação
	}

	fr, err := Filter(ratings, 2, 2)
	require.NoError(t, err)

	// usuário 3 cai (1 < 2); A e B mantêm 2 avaliações dos sobreviventes
	assert.NotContains(t, fr.Users, 3)
	assert.Contains(t, fr.Users, 1)
	assert.Contains(t, fr.Users, 2)
	assert.Contains(t, fr.Books, "A")
	assert.Contains(t, fr.Books, "B")
}

// A contagem de livros é feita sobre as avaliações dos usuários sobreviventes,
// não sobre o conjunto completo (ordem fixa do pipeline).
func TestFilterBookCountAfterUserFilter(t *testing.T) {
	ratings := []models.Rating{
		rating(1, "A"), rating(1, "B"),
		rating(2, "A"), rating(2, "B"),
		rating(3, "C"), rating(4, "C"), // C só tem avaliações de usuários com 1 rating
	}

	fr, err := Filter(ratings, 2, 2)
	require.NoError(t, err)

	assert.Contains(t, fr.Books, "A")
	assert.NotContains(t, fr.Books, "C")
}

func TestFilterThresholdZeroIsNoOp(t *testing.T) {
	ratings := []models.Rating{
		rating(1, "A"),
		rating(2, "B"),
	}

	fr, err := Filter(ratings, 0, -1)
	require.NoError(t, err)

	assert.Len(t, fr.Users, 2)
	assert.Len(t, fr.Books, 2)
}

func TestFilterAllUsersEliminated(t *testing.T) {
	ratings := []models.Rating{rating(1, "A")}

	_, err := Filter(ratings, 0, 10)

	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "usuarios", insufficient.What)
	assert.Equal(t, 10, insufficient.Threshold)
}

func TestFilterAllBooksEliminated(t *testing.T) {
	ratings := []models.Rating{
		rating(1, "A"), rating(1, "B"),
	}

	_, err := Filter(ratings, 5, 0)

	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "livros", insufficient.What)
}
