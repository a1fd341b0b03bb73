package recommender

import "fmt"

// BookNotFoundError: o título consultado não tem linha na matriz
// (livro filtrado pelos thresholds ou inexistente). Recuperável pelo caller.
type BookNotFoundError struct {
	Title string
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("livro %q não encontrado na base de dados", e.Title)
}

// InvalidArgumentError: argumento de consulta rejeitado antes de qualquer I/O.
type InvalidArgumentError struct {
	Param string
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("argumento inválido: %s=%v", e.Param, e.Value)
}
