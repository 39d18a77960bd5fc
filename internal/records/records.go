// Package records loads and saves competition record tables as CSV.
// The required columns are game, player, and score; any further
// columns ride along untouched as extra columns.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pable/go-h2h/internal/model"
)

// DefaultNA is the token read as a missing participant identity.
const DefaultNA = "NA"

// Load reads a record table from the CSV file at path. Player cells
// equal to naToken (or empty) are loaded as unnamed participants.
func Load(path, naToken string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	recs, err := Read(f, naToken)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return recs, nil
}

// Read parses a record table from CSV. The header row must contain
// game, player, and score columns; their order is free.
func Read(r io.Reader, naToken string) ([]model.Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("records: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("records: read header: %w", err)
	}

	gameIdx, playerIdx, scoreIdx := -1, -1, -1
	var extraCols []int
	for i, name := range header {
		switch name {
		case "game":
			gameIdx = i
		case "player":
			playerIdx = i
		case "score":
			scoreIdx = i
		default:
			extraCols = append(extraCols, i)
		}
	}
	for name, idx := range map[string]int{"game": gameIdx, "player": playerIdx, "score": scoreIdx} {
		if idx < 0 {
			return nil, fmt.Errorf("records: missing required column %q", name)
		}
	}

	var out []model.Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("records: line %d: %w", line, err)
		}

		score, err := strconv.ParseFloat(row[scoreIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("records: line %d: bad score %q: %w", line, row[scoreIdx], err)
		}

		player := row[playerIdx]
		if player == naToken {
			player = ""
		}

		rec := model.Record{Game: row[gameIdx], Player: player, Score: score}
		if len(extraCols) > 0 {
			rec.Extra = make(map[string]string, len(extraCols))
			for _, i := range extraCols {
				rec.Extra[header[i]] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Write emits a record table as CSV, extra columns in sorted name
// order after the required three. Unnamed participants are written as
// naToken.
func Write(w io.Writer, recs []model.Record, naToken string) error {
	extras := extraNames(recs)
	cw := csv.NewWriter(w)

	header := append([]string{"game", "player", "score"}, extras...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("records: write header: %w", err)
	}
	for _, r := range recs {
		player := r.Player
		if player == "" {
			player = naToken
		}
		row := []string{r.Game, player, formatScore(r.Score)}
		for _, name := range extras {
			row = append(row, r.Extra[name])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("records: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePairgames emits a pairgame table as CSV with integer game ids.
func WritePairgames(w io.Writer, pgs []model.PairgameRecord, naToken string) error {
	recs := make([]model.Record, len(pgs))
	for i, pg := range pgs {
		recs[i] = model.Record{
			Game:   strconv.Itoa(pg.Game),
			Player: pg.Player,
			Score:  pg.Score,
			Extra:  pg.Extra,
		}
	}
	return Write(w, recs, naToken)
}

func extraNames(recs []model.Record) []string {
	set := make(map[string]struct{})
	for _, r := range recs {
		for name := range r.Extra {
			set[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
