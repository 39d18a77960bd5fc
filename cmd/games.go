package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-h2h/internal/records"
	"github.com/pable/go-h2h/internal/report"
	"github.com/pable/go-h2h/internal/summarise"
)

var gamesCmd = &cobra.Command{
	Use:   "games <records.csv>",
	Short: "Summarise records per game",
	Args:  cobra.ExactArgs(1),
	RunE:  runGames,
}

func runGames(cmd *cobra.Command, args []string) error {
	recs, err := records.Load(args[0], naToken)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	rows, err := summarise.Games(recs, summarise.CommonReductions)
	if err != nil {
		return err
	}
	report.PrintSummary(os.Stdout, "GAME", reductionNames(summarise.CommonReductions), rows)
	return nil
}
