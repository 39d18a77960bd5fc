// Package matchup derives ordered participant pairs from competition
// records. Every game contributes the full Cartesian product of its
// rows with themselves, so a game with k rows yields k² matchups,
// including one self-pair per row.
package matchup

import (
	"github.com/pable/go-h2h/internal/model"
)

// Generate enumerates all ordered participant pairs co-occurring in the
// same game, in input game order. Unnamed rows are assigned a unique
// per-occurrence identity scoped to their position within the game, so
// two unnamed rows of the same game pair with each other as distinct
// participants and only a row against itself forms a self-pair.
func Generate(records []model.Record) []model.Matchup {
	games, order := groupByGame(records)

	var out []model.Matchup
	for _, game := range order {
		rows := games[game]
		ids := occurrenceIDs(rows)
		for i, ri := range rows {
			for j, rj := range rows {
				out = append(out, model.Matchup{
					Game:    game,
					Player1: ids[i],
					Player2: ids[j],
					Score1:  ri.Score,
					Score2:  rj.Score,
				})
			}
		}
	}
	return out
}

// groupByGame splits records per game identity, keeping the games in
// first-appearance order and the rows in input order within each game.
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

// occurrenceIDs maps one game's rows to occurrence identities. Named
// rows share their name; unnamed rows get distinct Occ values.
func occurrenceIDs(rows []model.Record) []model.PlayerID {
	ids := make([]model.PlayerID, len(rows))
	occ := 0
	for i, r := range rows {
		if r.Known() {
			ids[i] = model.PlayerID{Name: r.Player}
			continue
		}
		occ++
		ids[i] = model.PlayerID{Occ: occ}
	}
	return ids
}
