// Package report renders engine output as aligned text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-h2h/internal/h2h"
	"github.com/pable/go-h2h/internal/model"
	"github.com/pable/go-h2h/internal/pairtable"
	"github.com/pable/go-h2h/internal/summarise"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func formatValue(v float64) string {
	if pairtable.IsEmpty(v) {
		return "—"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// PrintMatchups writes the matchup table. Unnamed participant
// occurrences render with their occurrence suffix (?1, ?2, ...).
func PrintMatchups(w io.Writer, ms []model.Matchup) {
	table := newTable(w)
	table.Header("GAME", "PLAYER1", "PLAYER2", "SCORE1", "SCORE2")
	for _, m := range ms {
		table.Append(
			m.Game,
			m.Player1.String(),
			m.Player2.String(),
			formatValue(m.Score1),
			formatValue(m.Score2),
		)
	}
	table.Render()
}

// PrintLong writes a head-to-head long table, one statistic per column.
func PrintLong(w io.Writer, tbl *h2h.LongTable) {
	table := newTable(w)
	header := append([]string{"PLAYER1", "PLAYER2"}, upper(tbl.Stats)...)
	table.Header(toAny(header)...)
	for _, r := range tbl.Rows {
		row := []string{r.Player1, r.Player2}
		for _, v := range r.Values {
			row = append(row, formatValue(v))
		}
		table.Append(toAny(row)...)
	}
	table.Render()
}

// PrintMatrix writes a head-to-head matrix with player1 on rows and
// player2 on columns.
func PrintMatrix(w io.Writer, name string, m *pairtable.Matrix) {
	fmt.Fprintf(w, "\n%s (rows: player1, cols: player2)\n\n", name)
	table := newTable(w)
	header := append([]string{""}, m.Labels...)
	table.Header(toAny(header)...)
	for i, label := range m.Labels {
		row := []string{label}
		for j := range m.Labels {
			row = append(row, formatValue(m.Data[i][j]))
		}
		table.Append(toAny(row)...)
	}
	table.Render()
}

// PrintSummary writes per-item summary rows under the given key header.
func PrintSummary(w io.Writer, keyHeader string, names []string, rows []summarise.Row[string]) {
	table := newTable(w)
	header := append([]string{keyHeader}, upper(names)...)
	table.Header(toAny(header)...)
	for _, r := range rows {
		row := []string{r.Key}
		for _, v := range r.Values {
			row = append(row, formatValue(v))
		}
		table.Append(toAny(row)...)
	}
	table.Render()
}

// PrintPairgames writes a decomposed pairgame table.
func PrintPairgames(w io.Writer, pgs []model.PairgameRecord) {
	table := newTable(w)
	table.Header("GAME", "PLAYER", "SCORE")
	for _, pg := range pgs {
		player := pg.Player
		if player == "" {
			player = model.Unknown
		}
		table.Append(strconv.Itoa(pg.Game), player, formatValue(pg.Score))
	}
	table.Render()
}

func upper(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToUpper(n)
	}
	return out
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
