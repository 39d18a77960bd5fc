package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-h2h/internal/h2h"
	"github.com/pable/go-h2h/internal/records"
	"github.com/pable/go-h2h/internal/report"
)

var (
	longStats   []string
	longPlayers []string
	longFill    []string
)

var longCmd = &cobra.Command{
	Use:   "long <records.csv>",
	Short: "Compute the head-to-head long table",
	Long: `Compute one row per ordered player pair with one column per statistic.

With --players the listed names form a closed identity universe: every
ordered pair of it appears in the output, observed or not, and --fill
can substitute defaults for the unobserved ones.`,
	Args: cobra.ExactArgs(1),
	RunE: runLong,
}

func init() {
	longCmd.Flags().StringSliceVar(&longStats, "stats", []string{"num", "num_wins", "mean_score_diff"},
		fmt.Sprintf("statistics to compute (known: %s)", strings.Join(h2h.StatNames(), ", ")))
	longCmd.Flags().StringSliceVar(&longPlayers, "players", nil, "closed player domain (default: observed players)")
	longCmd.Flags().StringArrayVar(&longFill, "fill", nil, "default for empty cells, as stat=value (repeatable)")
}

func runLong(cmd *cobra.Command, args []string) error {
	recs, err := records.Load(args[0], naToken)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	stats := make([]h2h.Stat, 0, len(longStats))
	for _, name := range longStats {
		s, err := h2h.Lookup(name)
		if err != nil {
			return err
		}
		stats = append(stats, s)
	}

	opts, err := buildOptions(longPlayers, longFill)
	if err != nil {
		return err
	}

	tbl, err := h2h.Long(recs, stats, opts...)
	if err != nil {
		return fmt.Errorf("h2h long: %w", err)
	}
	if len(tbl.Rows) == 0 {
		fmt.Fprintln(os.Stdout, "No matchups found.")
		return nil
	}
	report.PrintLong(os.Stdout, tbl)
	return nil
}

// buildOptions turns the --players and --fill flags into h2h options.
func buildOptions(players, fill []string) ([]h2h.Option, error) {
	var opts []h2h.Option
	if len(players) > 0 {
		opts = append(opts, h2h.WithDomain(players...))
	}
	if len(fill) > 0 {
		m := make(map[string]float64, len(fill))
		for _, f := range fill {
			name, raw, ok := strings.Cut(f, "=")
			if !ok {
				return nil, fmt.Errorf("bad --fill %q: want stat=value", f)
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("bad --fill %q: %w", f, err)
			}
			m[name] = v
		}
		opts = append(opts, h2h.WithFill(m))
	}
	return opts, nil
}
