// Package knn implementa a busca exata de vizinhos mais próximos por
// distância de cosseno sobre as linhas da matriz de avaliações.
package knn

import (
	"fmt"
	"math"
	"sort"

	"github.com/BrunoSoussa/k-means-recomendation/internal/matrix"
)

// Neighbor é um resultado da consulta: linha vizinha e distância de cosseno.
// Para vetores não-negativos a distância fica em [0,1] (0 = idênticos).
type Neighbor struct {
	Row      int
	Distance float64
}

// Index é o índice de similaridade. Busca exata por força bruta, como o
// NearestNeighbors(metric='cosine') que ele substitui: sem aproximação,
// desempate determinístico por índice de linha crescente.
type Index struct {
	m     *matrix.RatingMatrix
	norms []float64 // ||linha|| precomputada no Fit
}

// Fit constrói o índice sobre as linhas da matriz. A matriz não pode mais
// ser alterada depois do Fit.
func Fit(m *matrix.RatingMatrix) *Index {
	norms := make([]float64, m.Rows())
	for i := range norms {
		var sq float64
		for _, c := range m.Row(i) {
			sq += c.Val * c.Val
		}
		norms[i] = math.Sqrt(sq)
	}
	return &Index{m: m, norms: norms}
}

// dot faz o produto interno de duas linhas esparsas (merge por coluna).
func dot(a, b []matrix.Cell) float64 {
	var s float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Col == b[j].Col:
			s += a[i].Val * b[j].Val
			i++
			j++
		case a[i].Col < b[j].Col:
			i++
		default:
			j++
		}
	}
	return s
}

// Query devolve até k vizinhos da linha row, excluindo a própria linha,
// ordenados por distância crescente (empate: linha menor primeiro).
func (ix *Index) Query(row, k int) ([]Neighbor, error) {
	if row < 0 || row >= ix.m.Rows() {
		return nil, fmt.Errorf("linha %d fora do intervalo [0,%d)", row, ix.m.Rows())
	}
	if k <= 0 {
		return []Neighbor{}, nil
	}

	q := ix.m.Row(row)
	qNorm := ix.norms[row]

	out := make([]Neighbor, 0, ix.m.Rows()-1)
	for i := 0; i < ix.m.Rows(); i++ {
		if i == row {
			continue
		}
		var sim float64
		if qNorm > 0 && ix.norms[i] > 0 {
			sim = dot(q, ix.m.Row(i)) / (qNorm * ix.norms[i])
		}
		// ruído de ponto flutuante: cosseno de vetores não-negativos é [0,1]
		if sim < 0 {
			sim = 0
		} else if sim > 1 {
			sim = 1
		}
		out = append(out, Neighbor{Row: i, Distance: 1 - sim})
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Distance != out[b].Distance {
			return out[a].Distance < out[b].Distance
		}
		return out[a].Row < out[b].Row
	})
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}
