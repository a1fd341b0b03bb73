package models

// Book é uma linha do CSV de livros (imutável depois de carregada).
type Book struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Rating é uma linha do CSV de avaliações. Rating 0 é válido
// (avaliação implícita, convenção do dataset Book-Crossing).
type Rating struct {
	UserID int     `json:"userId"`
	ISBN   string  `json:"isbn"`
	Rating float64 `json:"rating"`
}
