// Package matrix constrói a matriz esparsa livro x usuário usada pelo KNN.
package matrix

import (
	"log"
	"sort"

	"github.com/BrunoSoussa/k-means-recomendation/internal/dataset"
	"github.com/BrunoSoussa/k-means-recomendation/internal/models"
)

// Cell é uma entrada não-nula de uma linha da matriz.
type Cell struct {
	Col int
	Val float64
}

// RatingMatrix é a matriz livro x usuário. Cada linha corresponde a um isbn
// sobrevivente dos filtros; células ausentes valem 0. Depois de construída a
// matriz é imutável: a ordem das linhas define o mapeamento índice -> título
// usado para traduzir os resultados do KNN.
type RatingMatrix struct {
	rows    [][]Cell // células ordenadas por coluna
	cols    int
	isbns   []string       // linha -> isbn
	titles  []string       // linha -> título
	byTitle map[string]int // título -> primeira linha (duplicatas: vence a primeira)
	nnz     int
}

// Build pivota as avaliações filtradas na matriz livro x usuário.
// Só entram avaliações cujo isbn passou no filtro de livros E cujo usuário
// passou no filtro de usuários; além disso o isbn precisa ter metadados no
// CSV de livros (equivalente ao merge por isbn do pipeline original).
// Avaliações repetidas do mesmo par (usuário, livro) são agregadas por média.
func Build(books []models.Book, ratings []models.Rating, fr *dataset.FilterResult) *RatingMatrix {
	titleByISBN := make(map[string]string, len(books))
	for _, b := range books {
		if _, ok := titleByISBN[b.ISBN]; !ok {
			titleByISBN[b.ISBN] = b.Title
		}
	}

	// linhas: isbns sobreviventes com metadados, em ordem lexicográfica
	var isbns []string
	for isbn := range fr.Books {
		if _, ok := titleByISBN[isbn]; ok {
			isbns = append(isbns, isbn)
		}
	}
	sort.Strings(isbns)

	// colunas: usuários sobreviventes em ordem crescente
	userIDs := make([]int, 0, len(fr.Users))
	for u := range fr.Users {
		userIDs = append(userIDs, u)
	}
	sort.Ints(userIDs)

	rowByISBN := make(map[string]int, len(isbns))
	for i, isbn := range isbns {
		rowByISBN[isbn] = i
	}
	colByUser := make(map[int]int, len(userIDs))
	for j, u := range userIDs {
		colByUser[u] = j
	}

	// acumula soma e contagem por célula para a média
	type agg struct {
		sum float64
		n   int
	}
	cells := make([]map[int]*agg, len(isbns))

	for _, r := range ratings {
		i, okB := rowByISBN[r.ISBN]
		j, okU := colByUser[r.UserID]
		if !okB || !okU {
			continue
		}
		if cells[i] == nil {
			cells[i] = make(map[int]*agg)
		}
		a := cells[i][j]
		if a == nil {
			a = &agg{}
			cells[i][j] = a
		}
		a.sum += r.Rating
		a.n++
	}

	m := &RatingMatrix{
		rows:    make([][]Cell, len(isbns)),
		cols:    len(userIDs),
		isbns:   isbns,
		titles:  make([]string, len(isbns)),
		byTitle: make(map[string]int, len(isbns)),
	}

	var dupTitles int
	for i, isbn := range isbns {
		title := titleByISBN[isbn]
		m.titles[i] = title
		if _, ok := m.byTitle[title]; !ok {
			m.byTitle[title] = i
		} else {
			dupTitles++
		}

		row := make([]Cell, 0, len(cells[i]))
		for j, a := range cells[i] {
			row = append(row, Cell{Col: j, Val: a.sum / float64(a.n)})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].Col < row[b].Col })
		m.rows[i] = row
		m.nnz += len(row)
	}

	if dupTitles > 0 {
		log.Printf("[matrix] %d títulos duplicados no catálogo; consultas por título usam a primeira ocorrência", dupTitles)
	}
	return m
}

// Rows devolve o número de livros (linhas).
func (m *RatingMatrix) Rows() int { return len(m.rows) }

// Cols devolve o número de usuários (colunas).
func (m *RatingMatrix) Cols() int { return m.cols }

// NNZ devolve o número de células não-nulas armazenadas.
func (m *RatingMatrix) NNZ() int { return m.nnz }

// Row devolve as células não-nulas da linha i, ordenadas por coluna.
// O slice devolvido não deve ser modificado.
func (m *RatingMatrix) Row(i int) []Cell { return m.rows[i] }

// Title devolve o título do livro da linha i.
func (m *RatingMatrix) Title(i int) string { return m.titles[i] }

// ISBN devolve o isbn do livro da linha i.
func (m *RatingMatrix) ISBN(i int) string { return m.isbns[i] }

// RowByTitle resolve título -> linha (match exato, case-sensitive).
func (m *RatingMatrix) RowByTitle(title string) (int, bool) {
	i, ok := m.byTitle[title]
	return i, ok
}
