package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/report"
	"github.com/lmendes/go-atp-h2h/internal/storage"
)

var playersCmd = &cobra.Command{
	Use:   "players <term>",
	Short: "Search stored player names",
	Long:  "Case-insensitive substring search over all winner and loser names in the corpus.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	names, err := db.SearchPlayers(args[0])
	if err != nil {
		return fmt.Errorf("search players: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintf(os.Stdout, "No players matching %q\n", args[0])
		return nil
	}
	report.PrintPlayerList(os.Stdout, names)
	return nil
}
