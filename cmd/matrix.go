package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-h2h/internal/h2h"
	"github.com/pable/go-h2h/internal/records"
	"github.com/pable/go-h2h/internal/report"
)

var (
	matrixStat    string
	matrixPlayers []string
	matrixFill    []string
)

var matrixCmd = &cobra.Command{
	Use:   "matrix <records.csv>",
	Short: "Compute the head-to-head matrix of one statistic",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatrix,
}

func init() {
	matrixCmd.Flags().StringVar(&matrixStat, "stat", "mean_score_diff", "statistic to compute")
	matrixCmd.Flags().StringSliceVar(&matrixPlayers, "players", nil, "closed player domain (default: observed players)")
	matrixCmd.Flags().StringArrayVar(&matrixFill, "fill", nil, "default for empty cells, as stat=value")
}

func runMatrix(cmd *cobra.Command, args []string) error {
	recs, err := records.Load(args[0], naToken)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	stat, err := h2h.Lookup(matrixStat)
	if err != nil {
		return err
	}

	opts, err := buildOptions(matrixPlayers, matrixFill)
	if err != nil {
		return err
	}

	m, err := h2h.Mat(recs, stat, opts...)
	if err != nil {
		return fmt.Errorf("h2h matrix: %w", err)
	}
	if len(m.Labels) == 0 {
		fmt.Fprintln(os.Stdout, "No matchups found.")
		return nil
	}
	report.PrintMatrix(os.Stdout, stat.Name, m)
	return nil
}
