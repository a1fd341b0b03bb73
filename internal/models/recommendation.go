package models

import "time"

// BookRecommendation é o valor devolvido pela fachada de recomendação.
// Score 1 = vetores de avaliação idênticos, 0 = ortogonais.
type BookRecommendation struct {
	Title           string  `json:"title" bson:"title"`
	SimilarityScore float64 `json:"similarity_score" bson:"similarityScore"`
}

// CatalogBook é um livro do catálogo filtrado, com a contagem de avaliações
// que entrou na matriz.
type CatalogBook struct {
	ISBN         string `json:"isbn"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	RatingsCount int    `json:"ratingsCount"`
}

// DatasetSummary resume o pipeline carregar -> filtrar -> pivotar.
type DatasetSummary struct {
	BooksLoaded    int `json:"booksLoaded"`
	RatingsLoaded  int `json:"ratingsLoaded"`
	FilteredBooks  int `json:"filteredBooks"`
	FilteredUsers  int `json:"filteredUsers"`
	MatrixRows     int `json:"matrixRows"`
	MatrixCols     int `json:"matrixCols"`
	MatrixNonZeros int `json:"matrixNonZeros"`
}

// RecommendationLog é o histórico persistido no Mongo depois de cada consulta.
type RecommendationLog struct {
	ID        string               `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title"         json:"title"`
	K         int                  `bson:"k"             json:"k"`
	Metric    string               `bson:"metric"        json:"metric"`
	Items     []BookRecommendation `bson:"items"         json:"items"`
	CreatedAt time.Time            `bson:"createdAt"     json:"createdAt"`
}
