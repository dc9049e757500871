// Package ngram holds the bigram language model used for disambiguation.
package ngram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"spellchecker/internal/tables"
)

// ErrEmpty is returned when a model file holds no usable count.
var ErrEmpty = errors.New("ngram: no bigrams")

// Model is a maximum likelihood bigram model without smoothing. It is built
// once and only read afterwards.
type Model struct {
	counts map[string]map[string]float64
	totals map[string]float64
}

func New() *Model {
	return &Model{
		counts: make(map[string]map[string]float64),
		totals: make(map[string]float64),
	}
}

// Load reads "first second count" lines. Lines that do not have exactly three
// fields or a positive count are skipped.
func Load(path string) (*Model, error) {
	m := New()
	err := tables.ReadLines(path, func(line string) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return
		}
		count, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || count <= 0 {
			return
		}
		m.Add(fields[0], fields[1], count)
	})
	if err != nil {
		return nil, fmt.Errorf("ngram: load %s: %w", path, err)
	}
	if len(m.totals) == 0 {
		return nil, fmt.Errorf("ngram: load %s: %w", path, ErrEmpty)
	}
	return m, nil
}

// Add increases the count of the pair (first, second).
func (m *Model) Add(first, second string, count float64) {
	row, ok := m.counts[first]
	if !ok {
		row = make(map[string]float64)
		m.counts[first] = row
	}
	row[second] += count
	m.totals[first] += count
}

// Probability returns count(first, second) / count(first, *), 0 when unseen.
func (m *Model) Probability(first, second string) float64 {
	total := m.totals[first]
	if total == 0 {
		return 0
	}
	return m.counts[first][second] / total
}
