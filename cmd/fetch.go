package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/model"
	"github.com/lmendes/go-atp-h2h/internal/storage"
	"github.com/lmendes/go-atp-h2h/internal/tennisdata"
)

// fetch command flags.
var (
	fetchFrom    int
	fetchTo      int
	fetchSource  string
	fetchRefresh bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download ATP season files and store them",
	Long: `Downloads per-season match CSVs from the tennis_atp mirror and stores
them in the local database. Every requested season is downloaded and parsed
before anything is written, so a failed season leaves the database untouched.

Examples:
  # Full default range (2000-2022)
  atph2h fetch

  # A single season, re-downloading even if already stored
  atph2h fetch --from 2019 --to 2019 --refresh`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchFrom, "from", 0, "first season year (default from config)")
	fetchCmd.Flags().IntVar(&fetchTo, "to", 0, "last season year (default from config)")
	fetchCmd.Flags().StringVar(&fetchSource, "source", "", "mirror base URL (default from config)")
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "re-download seasons that are already stored")
}

func runFetch(cmd *cobra.Command, args []string) error {
	from, to := fetchFrom, fetchTo
	if from == 0 {
		from = cfg.FromYear
	}
	if to == 0 {
		to = cfg.ToYear
	}
	if from > to {
		return fmt.Errorf("season range %d-%d is inverted", from, to)
	}
	source := fetchSource
	if source == "" {
		source = cfg.SourceURL
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	var years []int
	for year := from; year <= to; year++ {
		if !fetchRefresh {
			exists, err := db.SeasonExists(year)
			if err != nil {
				return fmt.Errorf("check season %d: %w", year, err)
			}
			if exists {
				fmt.Fprintf(os.Stdout, "Season %d already stored, skipping (use --refresh to re-download)\n", year)
				continue
			}
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		fmt.Fprintln(os.Stdout, "Nothing to fetch.")
		return nil
	}

	// Download and parse everything before the first write: a failed season
	// must not leave a partial corpus behind.
	client := tennisdata.NewClient(source)
	ctx := context.Background()
	seasons := make(map[int][]model.Match, len(years))
	for _, year := range years {
		fmt.Fprintf(os.Stdout, "Fetching season %d...\n", year)
		matches, err := client.FetchSeason(ctx, year)
		if err != nil {
			return fmt.Errorf("fetch aborted, nothing stored: %w", err)
		}
		seasons[year] = matches
	}

	for _, year := range years {
		if err := db.InsertSeason(year, seasons[year]); err != nil {
			return fmt.Errorf("store season %d: %w", year, err)
		}
		fmt.Fprintf(os.Stdout, "Stored season %d (%d matches)\n", year, len(seasons[year]))
	}
	return nil
}
