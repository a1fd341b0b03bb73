package dataset

import "fmt"

// DataLoadError indica fonte de dados ilegível, vazia ou sem as colunas esperadas.
// Fatal para a construção do recomendador, sem retry.
type DataLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("erro ao carregar %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("erro ao carregar %q: %s", e.Path, e.Reason)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// InsufficientDataError indica que os thresholds de filtragem eliminaram
// todos os livros ou todos os usuários: não há matriz válida para construir.
type InsufficientDataError struct {
	What      string // "livros" | "usuarios"
	Threshold int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("nenhum item de %s sobreviveu ao filtro (minimo de %d avaliações)", e.What, e.Threshold)
}
