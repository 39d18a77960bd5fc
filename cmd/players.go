package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-h2h/internal/model"
	"github.com/pable/go-h2h/internal/records"
	"github.com/pable/go-h2h/internal/report"
	"github.com/pable/go-h2h/internal/summarise"
)

var playersCmd = &cobra.Command{
	Use:   "players <records.csv>",
	Short: "Summarise records per player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	recs, err := records.Load(args[0], naToken)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	rows, err := summarise.Players(recs, summarise.CommonReductions)
	if err != nil {
		return err
	}
	report.PrintSummary(os.Stdout, "PLAYER", reductionNames(summarise.CommonReductions), rows)
	return nil
}

func reductionNames(rs []summarise.Reduction[model.Record]) []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}
