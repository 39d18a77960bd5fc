package pairtable_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pable/go-h2h/internal/pairtable"
)

func TestLongToMatrix_Squareness(t *testing.T) {
	// Row keys {A, B} and column keys {B, C}: the matrix must cover the
	// union {A, B, C} on both axes.
	cells := []pairtable.Cell{
		{Row: "A", Col: "B", Value: 1},
		{Row: "B", Col: "C", Value: 2},
	}

	m := pairtable.LongToMatrix(cells)
	require.Equal(t, []string{"A", "B", "C"}, m.Labels)
	require.Len(t, m.Data, 3)
	for _, row := range m.Data {
		require.Len(t, row, 3)
	}

	v, ok := m.At("A", "B")
	require.True(t, ok)
	require.Equal(t, 1.0, v)

	// Uncovered cells hold the empty marker.
	v, ok = m.At("C", "A")
	require.True(t, ok)
	require.True(t, pairtable.IsEmpty(v))
}

func TestLongToMatrix_DuplicateLastWriteWins(t *testing.T) {
	cells := []pairtable.Cell{
		{Row: "A", Col: "B", Value: 1},
		{Row: "A", Col: "B", Value: 9},
	}
	m := pairtable.LongToMatrix(cells)
	v, ok := m.At("A", "B")
	require.True(t, ok)
	require.Equal(t, 9.0, v)
}

func TestRoundTrip_LongMatrixLong(t *testing.T) {
	in := []pairtable.Cell{
		{Row: "B", Col: "A", Value: 3},
		{Row: "A", Col: "B", Value: 1},
		{Row: "A", Col: "A", Value: 2},
	}

	out := pairtable.LongToMatrix(in).ToLong(true)
	require.Len(t, out, len(in))

	sortCells(in)
	sortCells(out)
	require.Equal(t, in, out)
}

func TestRoundTrip_MatrixLongMatrix(t *testing.T) {
	m := pairtable.LongToMatrix([]pairtable.Cell{
		{Row: "A", Col: "B", Value: 1},
		{Row: "B", Col: "A", Value: -1},
	})

	m2 := pairtable.LongToMatrix(m.ToLong(true))
	require.Equal(t, m.Labels, m2.Labels)
	for i := range m.Data {
		for j := range m.Data[i] {
			if pairtable.IsEmpty(m.Data[i][j]) {
				require.True(t, pairtable.IsEmpty(m2.Data[i][j]))
				continue
			}
			require.Equal(t, m.Data[i][j], m2.Data[i][j])
		}
	}
}

func TestToLong_KeepEmpty(t *testing.T) {
	m := pairtable.LongToMatrix([]pairtable.Cell{
		{Row: "A", Col: "B", Value: 1},
	})

	all := m.ToLong(false)
	require.Len(t, all, 4, "2x2 matrix emits every cell when drop=false")

	// Row-major over sorted labels.
	require.Equal(t, "A", all[0].Row)
	require.Equal(t, "A", all[0].Col)
	require.Equal(t, "B", all[3].Row)
	require.Equal(t, "B", all[3].Col)

	dropped := m.ToLong(true)
	require.Len(t, dropped, 1)
}

func TestFill(t *testing.T) {
	m := pairtable.LongToMatrix([]pairtable.Cell{
		{Row: "A", Col: "B", Value: 1},
	})
	m.Fill(0)
	for i := range m.Data {
		for j := range m.Data[i] {
			require.False(t, pairtable.IsEmpty(m.Data[i][j]))
		}
	}
	v, _ := m.At("B", "A")
	require.Equal(t, 0.0, v)
	v, _ = m.At("A", "B")
	require.Equal(t, 1.0, v)
}

func TestSet_UnknownLabel(t *testing.T) {
	m := pairtable.LongToMatrix([]pairtable.Cell{{Row: "A", Col: "A", Value: 1}})
	require.NoError(t, m.Set("A", "A", 5))
	require.Error(t, m.Set("Z", "A", 5))
	require.Error(t, m.Set("A", "Z", 5))

	_, ok := m.At("Z", "A")
	require.False(t, ok)
}

func TestLongToMatrix_Empty(t *testing.T) {
	m := pairtable.LongToMatrix(nil)
	require.Empty(t, m.Labels)
	require.Empty(t, m.ToLong(true))
}

func sortCells(cells []pairtable.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
