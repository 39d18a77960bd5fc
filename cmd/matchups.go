package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-h2h/internal/matchup"
	"github.com/pable/go-h2h/internal/records"
	"github.com/pable/go-h2h/internal/report"
)

var matchupsCmd = &cobra.Command{
	Use:   "matchups <records.csv>",
	Short: "Enumerate all ordered participant pairs per game",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchups,
}

func runMatchups(cmd *cobra.Command, args []string) error {
	recs, err := records.Load(args[0], naToken)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	ms := matchup.Generate(recs)
	if len(ms) == 0 {
		fmt.Fprintln(os.Stdout, "No records loaded; nothing to match up.")
		return nil
	}
	report.PrintMatchups(os.Stdout, ms)
	return nil
}
