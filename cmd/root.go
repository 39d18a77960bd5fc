package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-h2h/internal/records"
)

var naToken string

var rootCmd = &cobra.Command{
	Use:   "h2h",
	Short: "Head-to-head statistics for competition records",
	Long: "Compute pairwise matchups, head-to-head summary tables and matrices,\n" +
		"and pairgame decompositions from long-format competition records.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&naToken, "na", records.DefaultNA, "player token read as a missing identity")

	rootCmd.AddCommand(matchupsCmd)
	rootCmd.AddCommand(longCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(pairgamesCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(gamesCmd)
}
