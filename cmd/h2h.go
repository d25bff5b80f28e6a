package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/h2h"
	"github.com/lmendes/go-atp-h2h/internal/report"
	"github.com/lmendes/go-atp-h2h/internal/storage"
)

var h2hLimit int

var h2hCmd = &cobra.Command{
	Use:   "h2h <player1> <player2>",
	Short: "Head-to-head record between two players",
	Long: `Computes the head-to-head record between two players: full meeting
list (newest first), win counts, surface and round breakdowns, and the
yearly trend. Player names match case-insensitively but must be exact
otherwise; use 'atph2h players <term>' to find the stored spelling.

Example:
  atph2h h2h "Novak Djokovic" "Roger Federer"`,
	Args: cobra.ExactArgs(2),
	RunE: runH2H,
}

func init() {
	h2hCmd.Flags().IntVar(&h2hLimit, "limit", 10, "max meetings to list (0 = all)")
}

func runH2H(cmd *cobra.Command, args []string) error {
	p1, p2 := args[0], args[1]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	corpus, err := db.LoadCorpus()
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if len(corpus) == 0 {
		fmt.Fprintln(os.Stdout, "No match data stored yet. Run 'atph2h fetch' first.")
		return nil
	}

	res := h2h.Compute(corpus, p1, p2)

	report.PrintScoreline(os.Stdout, res)
	if len(res.Meetings) == 0 {
		fmt.Fprintln(os.Stdout, "No prior meetings.")
		return nil
	}
	report.PrintMeetingsTable(os.Stdout, res.Meetings, h2hLimit)
	report.PrintBreakdownTable(os.Stdout, "Surface", res.BySurface)
	report.PrintBreakdownTable(os.Stdout, "Round", res.ByRound)
	report.PrintTrendTable(os.Stdout, res)
	return nil
}
