package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/report"
	"github.com/lmendes/go-atp-h2h/internal/storage"
)

var summaryTop int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the corpus",
	Long: `Display aggregate statistics about the stored corpus: total match
count, date range, surface breakdown, and the most active players.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryTop, "top", 10, "number of most-active players to list")
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalMatches == 0 {
		fmt.Fprintln(os.Stdout, "No match data stored yet. Run 'atph2h fetch' first.")
		return nil
	}
	report.PrintOverview(os.Stdout, ov)

	surfaces, err := db.GetSurfaceStats()
	if err != nil {
		return fmt.Errorf("get surface stats: %w", err)
	}
	report.PrintSurfaceTable(os.Stdout, surfaces)

	top, err := db.GetTopPlayers(summaryTop)
	if err != nil {
		return fmt.Errorf("get top players: %w", err)
	}
	report.PrintTopPlayersTable(os.Stdout, top)
	return nil
}
