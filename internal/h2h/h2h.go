// Package h2h reduces matchups into per-pair head-to-head summary
// statistics, in long (edge-list) and square matrix form.
package h2h

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pable/go-h2h/internal/matchup"
	"github.com/pable/go-h2h/internal/model"
	"github.com/pable/go-h2h/internal/pairtable"
	"github.com/pable/go-h2h/internal/summarise"
)

// Stat is one named head-to-head statistic: a reduction over all
// matchups of one ordered player pair.
type Stat struct {
	Name string
	Fn   func(pair []model.Matchup) (float64, error)
}

// LongTable is the edge-list form: at most one row per ordered player
// pair, with one value column per requested statistic.
type LongTable struct {
	Stats []string
	Rows  []Row
}

// Row is one ordered player pair and its statistic values, parallel to
// LongTable.Stats. Cells never computed hold the empty marker.
type Row struct {
	Player1 string
	Player2 string
	Values  []float64
}

// AggregationError reports a statistic that failed on one player pair.
type AggregationError struct {
	Player1 string
	Player2 string
	Stat    string
	Err     error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("h2h: stat %q failed for pair (%s, %s): %v", e.Stat, e.Player1, e.Player2, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

type config struct {
	domain []string
	fill   map[string]float64
}

// Option configures Long and Mat.
type Option func(*config)

// WithDomain declares a closed universe of player identities. Every
// ordered pair of the domain appears in the output, observed or not;
// matchups involving players outside the domain are excluded.
func WithDomain(players ...string) Option {
	return func(c *config) { c.domain = append([]string(nil), players...) }
}

// WithFill substitutes a default for otherwise-empty cells of the named
// statistic columns after aggregation. It never fabricates matchups.
func WithFill(fill map[string]float64) Option {
	return func(c *config) {
		c.fill = make(map[string]float64, len(fill))
		for k, v := range fill {
			c.fill[k] = v
		}
	}
}

type pairKey struct {
	p1, p2 string
}

// Long computes one row per ordered player pair, sorted by
// (player1, player2). Unnamed participant occurrences are collapsed
// into the shared Unknown bucket before grouping; this is the one place
// the per-occurrence distinctness of matchup generation is discarded.
func Long(records []model.Record, stats []Stat, opts ...Option) (*LongTable, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	ms := matchup.Generate(records)
	if cfg.domain != nil {
		ms = restrictToDomain(ms, cfg.domain)
	}

	reductions := make([]summarise.Reduction[model.Matchup], len(stats))
	names := make([]string, len(stats))
	for i, s := range stats {
		reductions[i] = summarise.Reduction[model.Matchup]{Name: s.Name, Fn: s.Fn}
		names[i] = s.Name
	}

	grouped, err := summarise.By(ms, func(m model.Matchup) pairKey {
		return pairKey{m.Player1.Bucket(), m.Player2.Bucket()}
	}, reductions)
	if err != nil {
		var re *summarise.ReduceError[pairKey]
		if errors.As(err, &re) {
			return nil, &AggregationError{
				Player1: re.Key.p1,
				Player2: re.Key.p2,
				Stat:    re.Name,
				Err:     re.Err,
			}
		}
		return nil, fmt.Errorf("h2h: %w", err)
	}

	tbl := &LongTable{Stats: names}
	if cfg.domain != nil {
		tbl.Rows = domainRows(grouped, cfg.domain, len(stats))
	} else {
		for _, g := range grouped {
			tbl.Rows = append(tbl.Rows, Row{Player1: g.Key.p1, Player2: g.Key.p2, Values: g.Values})
		}
		sort.Slice(tbl.Rows, func(i, j int) bool {
			a, b := tbl.Rows[i], tbl.Rows[j]
			if a.Player1 != b.Player1 {
				return a.Player1 < b.Player1
			}
			return a.Player2 < b.Player2
		})
	}

	applyFill(tbl, cfg.fill)
	return tbl, nil
}

// Mat computes the square matrix of a single statistic: Long restricted
// to one stat, passed through the pairtable codec with player1 on the
// row axis and player2 on the column axis. Fill substitutes the codec's
// empty marker.
func Mat(records []model.Record, stat Stat, opts ...Option) (*pairtable.Matrix, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	tbl, err := Long(records, []Stat{stat}, opts...)
	if err != nil {
		return nil, err
	}

	cells := make([]pairtable.Cell, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		cells = append(cells, pairtable.Cell{Row: r.Player1, Col: r.Player2, Value: r.Values[0]})
	}
	m := pairtable.LongToMatrix(cells)
	if v, ok := cfg.fill[stat.Name]; ok {
		m.Fill(v)
	}
	return m, nil
}

// restrictToDomain drops matchups whose pair is not fully inside the
// declared identity universe.
func restrictToDomain(ms []model.Matchup, domain []string) []model.Matchup {
	in := make(map[string]struct{}, len(domain))
	for _, p := range domain {
		in[p] = struct{}{}
	}
	var out []model.Matchup
	for _, m := range ms {
		if _, ok := in[m.Player1.Bucket()]; !ok {
			continue
		}
		if _, ok := in[m.Player2.Bucket()]; !ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

// domainRows assembles one row per ordered pair of the sorted domain.
// Pairs with no observed matchups get all-empty value cells.
func domainRows(grouped []summarise.Row[pairKey], domain []string, nstats int) []Row {
	byPair := make(map[pairKey][]float64, len(grouped))
	for _, g := range grouped {
		byPair[g.Key] = g.Values
	}

	sorted := append([]string(nil), domain...)
	sort.Strings(sorted)

	rows := make([]Row, 0, len(sorted)*len(sorted))
	for _, p1 := range sorted {
		for _, p2 := range sorted {
			values, ok := byPair[pairKey{p1, p2}]
			if !ok {
				values = make([]float64, nstats)
				for i := range values {
					values[i] = pairtable.Empty()
				}
			}
			rows = append(rows, Row{Player1: p1, Player2: p2, Values: values})
		}
	}
	return rows
}

func applyFill(tbl *LongTable, fill map[string]float64) {
	if len(fill) == 0 {
		return
	}
	for _, r := range tbl.Rows {
		for i, name := range tbl.Stats {
			if v, ok := fill[name]; ok && pairtable.IsEmpty(r.Values[i]) {
				r.Values[i] = v
			}
		}
	}
}
