// Package pairgames splits multi-participant games into independent
// two-participant games, the substrate most pairwise rating methods
// consume.
package pairgames

import (
	"github.com/pable/go-h2h/internal/model"
)

// Decompose emits one two-row pairgame per unordered pair of distinct
// rows within each game. Games with fewer than two rows are dropped;
// games with exactly two are kept as a single pairgame; larger games
// yield C(k,2) pairgames in lexicographic row-position order. New game
// ids are contiguous integers from 1 in emission order across the whole
// input, so the relative order of the original games is preserved.
func Decompose(records []model.Record) []model.PairgameRecord {
	games, order := groupByGame(records)

	var out []model.PairgameRecord
	next := 0
	for _, game := range order {
		rows := games[game]
		if len(rows) < 2 {
			continue
		}
		for i := 0; i < len(rows); i++ {
			for j := i + 1; j < len(rows); j++ {
				next++
				out = append(out, pairgameRow(next, rows[i]), pairgameRow(next, rows[j]))
			}
		}
	}
	return out
}

func pairgameRow(id int, r model.Record) model.PairgameRecord {
	return model.PairgameRecord{
		Game:   id,
		Player: r.Player,
		Score:  r.Score,
		Extra:  model.CloneExtra(r.Extra),
	}
}

func groupByGame(records []model.Record) (map[string][]model.Record, []string) {
	games := make(map[string][]model.Record)
	var order []string
	for _, r := range records {
		if _, seen := games[r.Game]; !seen {
			order = append(order, r.Game)
		}
		games[r.Game] = append(games[r.Game], r)
	}
	return games, order
}
