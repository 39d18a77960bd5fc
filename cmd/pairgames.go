package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-h2h/internal/pairgames"
	"github.com/pable/go-h2h/internal/records"
	"github.com/pable/go-h2h/internal/report"
)

var pairgamesOut string

var pairgamesCmd = &cobra.Command{
	Use:   "pairgames <records.csv>",
	Short: "Split multi-participant games into two-participant games",
	Args:  cobra.ExactArgs(1),
	RunE:  runPairgames,
}

func init() {
	pairgamesCmd.Flags().StringVarP(&pairgamesOut, "out", "o", "", "write pairgames as CSV to this file instead of printing")
}

func runPairgames(cmd *cobra.Command, args []string) error {
	recs, err := records.Load(args[0], naToken)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	pgs := pairgames.Decompose(recs)
	if len(pgs) == 0 {
		fmt.Fprintln(os.Stdout, "No games with two or more participants; nothing to decompose.")
		return nil
	}

	if pairgamesOut == "" {
		report.PrintPairgames(os.Stdout, pgs)
		return nil
	}

	f, err := os.Create(pairgamesOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", pairgamesOut, err)
	}
	defer f.Close()
	if err := records.WritePairgames(f, pgs, naToken); err != nil {
		return fmt.Errorf("write pairgames: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %d pairgames (%d rows) to %s\n", len(pgs)/2, len(pgs), pairgamesOut)
	return nil
}
