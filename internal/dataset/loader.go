package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BrunoSoussa/k-means-recomendation/internal/models"

	"golang.org/x/text/encoding/charmap"
)

// Os CSVs do Book-Crossing usam ';' como separador e ISO-8859-1 como encoding.
// Só as três primeiras colunas de cada arquivo interessam (as demais são ignoradas).

const csvSeparator = ';'

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.Comma = csvSeparator
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr
}

// LoadBooks lê o CSV de livros (isbn;title;author). Linhas com campo vazio
// são descartadas, como o dropna do pipeline original.
func LoadBooks(path string) ([]models.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "não foi possível abrir o arquivo", Err: err}
	}
	defer f.Close()

	cr := newReader(f)

	header, err := cr.Read()
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "arquivo vazio ou cabeçalho ilegível", Err: err}
	}
	if len(header) < 3 {
		return nil, &DataLoadError{Path: path, Reason: "colunas obrigatórias ausentes (isbn;title;author)"}
	}

	var books []models.Book
	var dropped int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			dropped++
			continue
		}
		if err != nil {
			return nil, &DataLoadError{Path: path, Reason: "falha de leitura", Err: err}
		}
		if len(rec) < 3 {
			dropped++
			continue
		}
		isbn := strings.TrimSpace(rec[0])
		title := rec[1]
		author := rec[2]
		if isbn == "" || title == "" || author == "" {
			dropped++
			continue
		}
		books = append(books, models.Book{ISBN: isbn, Title: title, Author: author})
	}

	if len(books) == 0 {
		return nil, &DataLoadError{Path: path, Reason: "nenhum livro válido após o parse"}
	}
	if dropped > 0 {
		log.Printf("[dataset] %d linhas de livros descartadas (campos ausentes) em %s", dropped, path)
	}
	return books, nil
}

// LoadRatings lê o CSV de avaliações (user;isbn;rating).
// Rating 0 é mantido: é avaliação implícita, e conta para os filtros.
func LoadRatings(path string) ([]models.Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "não foi possível abrir o arquivo", Err: err}
	}
	defer f.Close()

	cr := newReader(f)

	header, err := cr.Read()
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "arquivo vazio ou cabeçalho ilegível", Err: err}
	}
	if len(header) < 3 {
		return nil, &DataLoadError{Path: path, Reason: "colunas obrigatórias ausentes (user;isbn;rating)"}
	}

	var ratings []models.Rating
	var dropped int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			dropped++
			continue
		}
		if err != nil {
			return nil, &DataLoadError{Path: path, Reason: "falha de leitura", Err: err}
		}
		if len(rec) < 3 {
			dropped++
			continue
		}
		user, errU := strconv.Atoi(strings.TrimSpace(rec[0]))
		isbn := strings.TrimSpace(rec[1])
		value, errR := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if errU != nil || errR != nil || isbn == "" {
			dropped++
			continue
		}
		ratings = append(ratings, models.Rating{UserID: user, ISBN: isbn, Rating: value})
	}

	if len(ratings) == 0 {
		return nil, &DataLoadError{Path: path, Reason: "nenhuma avaliação válida após o parse"}
	}
	if dropped > 0 {
		log.Printf("[dataset] %d linhas de avaliações descartadas (malformadas) em %s", dropped, path)
	}
	return ratings, nil
}
