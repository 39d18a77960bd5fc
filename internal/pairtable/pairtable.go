// Package pairtable converts pair-keyed tabular data between a long
// edge-list form and a square matrix form. It carries no competition
// semantics; the h2h package layers those on top.
package pairtable

import (
	"fmt"
	"math"
	"sort"
)

// Cell is one row of the long form: an ordered key pair and its value.
type Cell struct {
	Row   string
	Col   string
	Value float64
}

// Matrix is the square form. Labels is the sorted union of every row
// and column key seen on either axis, so each identity gets both a row
// and a column. Cells never populated hold NaN, the empty marker.
type Matrix struct {
	Labels []string
	Data   [][]float64

	index map[string]int
}

// Empty is the marker stored in matrix cells no input row covered.
func Empty() float64 { return math.NaN() }

// IsEmpty reports whether v is the empty marker.
func IsEmpty(v float64) bool { return math.IsNaN(v) }

// LongToMatrix builds the square matrix for cells. When several cells
// share the same (Row, Col) key the last one in input order wins.
func LongToMatrix(cells []Cell) *Matrix {
	labelSet := make(map[string]struct{})
	for _, c := range cells {
		labelSet[c.Row] = struct{}{}
		labelSet[c.Col] = struct{}{}
	}
	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	m := newMatrix(labels)
	for _, c := range cells {
		m.Data[m.index[c.Row]][m.index[c.Col]] = c.Value
	}
	return m
}

func newMatrix(labels []string) *Matrix {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	data := make([][]float64, len(labels))
	for i := range data {
		row := make([]float64, len(labels))
		for j := range row {
			row[j] = Empty()
		}
		data[i] = row
	}
	return &Matrix{Labels: labels, Data: data, index: index}
}

// ToLong emits one cell per matrix entry, row-major over the sorted
// labels. With drop set, never-populated (empty) cells are omitted.
func (m *Matrix) ToLong(drop bool) []Cell {
	var out []Cell
	for i, row := range m.Labels {
		for j, col := range m.Labels {
			v := m.Data[i][j]
			if drop && IsEmpty(v) {
				continue
			}
			out = append(out, Cell{Row: row, Col: col, Value: v})
		}
	}
	return out
}

// At returns the cell for the given key pair. The second return is
// false when either label is unknown to the matrix.
func (m *Matrix) At(row, col string) (float64, bool) {
	i, ok := m.index[row]
	if !ok {
		return 0, false
	}
	j, ok := m.index[col]
	if !ok {
		return 0, false
	}
	return m.Data[i][j], true
}

// Set writes the cell for the given key pair.
func (m *Matrix) Set(row, col string, v float64) error {
	i, ok := m.index[row]
	if !ok {
		return fmt.Errorf("pairtable: unknown row label %q", row)
	}
	j, ok := m.index[col]
	if !ok {
		return fmt.Errorf("pairtable: unknown column label %q", col)
	}
	m.Data[i][j] = v
	return nil
}

// Fill replaces every empty cell with v.
func (m *Matrix) Fill(v float64) {
	for i := range m.Data {
		for j := range m.Data[i] {
			if IsEmpty(m.Data[i][j]) {
				m.Data[i][j] = v
			}
		}
	}
}
