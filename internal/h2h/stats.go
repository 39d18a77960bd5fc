package h2h

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pable/go-h2h/internal/model"
)

var errNoMatchups = errors.New("no matchups in group")

// Built-in head-to-head statistics. Each reduces all matchups of one
// ordered (player1, player2) pair from player1's point of view.
var (
	// Num counts the pair's matchups.
	Num = Stat{Name: "num", Fn: func(ms []model.Matchup) (float64, error) {
		return float64(len(ms)), nil
	}}

	// NumWins counts matchups player1 won outright; ties don't count.
	NumWins = Stat{Name: "num_wins", Fn: func(ms []model.Matchup) (float64, error) {
		var wins float64
		for _, m := range ms {
			if m.Score1 > m.Score2 {
				wins++
			}
		}
		return wins, nil
	}}

	// NumWinsHalf counts wins with ties worth half a win.
	NumWinsHalf = Stat{Name: "num_wins_half", Fn: func(ms []model.Matchup) (float64, error) {
		var wins float64
		for _, m := range ms {
			switch {
			case m.Score1 > m.Score2:
				wins++
			case m.Score1 == m.Score2:
				wins += 0.5
			}
		}
		return wins, nil
	}}

	// SumScore sums player1's scores.
	SumScore = Stat{Name: "sum_score", Fn: func(ms []model.Matchup) (float64, error) {
		var sum float64
		for _, m := range ms {
			sum += m.Score1
		}
		return sum, nil
	}}

	// MeanScore averages player1's scores.
	MeanScore = Stat{Name: "mean_score", Fn: func(ms []model.Matchup) (float64, error) {
		if len(ms) == 0 {
			return 0, errNoMatchups
		}
		var sum float64
		for _, m := range ms {
			sum += m.Score1
		}
		return sum / float64(len(ms)), nil
	}}

	// SumScoreDiff sums score1 - score2 over the pair's matchups.
	SumScoreDiff = Stat{Name: "sum_score_diff", Fn: func(ms []model.Matchup) (float64, error) {
		var sum float64
		for _, m := range ms {
			sum += m.ScoreDiff()
		}
		return sum, nil
	}}

	// MeanScoreDiff averages score1 - score2 over the pair's matchups.
	MeanScoreDiff = Stat{Name: "mean_score_diff", Fn: func(ms []model.Matchup) (float64, error) {
		if len(ms) == 0 {
			return 0, errNoMatchups
		}
		var sum float64
		for _, m := range ms {
			sum += m.ScoreDiff()
		}
		return sum / float64(len(ms)), nil
	}}

	// MeanScoreDiffPos is MeanScoreDiff clamped at zero, a common
	// substrate for rating methods that reject negative margins.
	MeanScoreDiffPos = Stat{Name: "mean_score_diff_pos", Fn: func(ms []model.Matchup) (float64, error) {
		v, err := MeanScoreDiff.Fn(ms)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, nil
		}
		return v, nil
	}}
)

var registry = map[string]Stat{
	Num.Name:              Num,
	NumWins.Name:          NumWins,
	NumWinsHalf.Name:      NumWinsHalf,
	SumScore.Name:         SumScore,
	MeanScore.Name:        MeanScore,
	SumScoreDiff.Name:     SumScoreDiff,
	MeanScoreDiff.Name:    MeanScoreDiff,
	MeanScoreDiffPos.Name: MeanScoreDiffPos,
}

// Lookup resolves a built-in statistic by name.
func Lookup(name string) (Stat, error) {
	s, ok := registry[name]
	if !ok {
		return Stat{}, fmt.Errorf("h2h: unknown stat %q (known: %v)", name, StatNames())
	}
	return s, nil
}

// StatNames lists the built-in statistic names in sorted order.
func StatNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
