package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/report"
	"github.com/lmendes/go-atp-h2h/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored seasons",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	seasons, err := db.ListSeasons()
	if err != nil {
		return fmt.Errorf("list seasons: %w", err)
	}
	if len(seasons) == 0 {
		fmt.Fprintln(os.Stdout, "No seasons stored yet. Run 'atph2h fetch' to download them.")
		return nil
	}
	report.PrintSeasonsTable(os.Stdout, seasons)
	return nil
}
