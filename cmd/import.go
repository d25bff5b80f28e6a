package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/model"
	"github.com/lmendes/go-atp-h2h/internal/parser"
	"github.com/lmendes/go-atp-h2h/internal/storage"
)

var importYear int

// seasonFileRe matches season filenames like atp_matches_2015.csv.
var seasonFileRe = regexp.MustCompile(`atp_matches_(\d{4})\.csv$`)

var importCmd = &cobra.Command{
	Use:   "import <file.csv> [<file.csv>...]",
	Short: "Import local season CSV files",
	Long: `Imports one or more local ATP season CSV files. The season year is
inferred from filenames of the form atp_matches_YYYY.csv; use --year to
override it for a single file. All files are parsed before anything is
written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntVar(&importYear, "year", 0, "season year override (single file only)")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importYear != 0 && len(args) > 1 {
		return fmt.Errorf("--year applies to a single file, got %d files", len(args))
	}

	type season struct {
		year    int
		matches []model.Match
	}
	var seasons []season
	for _, path := range args {
		year := importYear
		if year == 0 {
			var err error
			if year, err = yearFromFilename(path); err != nil {
				return err
			}
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		matches, err := parser.ParseSeason(f, year)
		f.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		seasons = append(seasons, season{year: year, matches: matches})
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	for _, s := range seasons {
		if err := db.InsertSeason(s.year, s.matches); err != nil {
			return fmt.Errorf("store season %d: %w", s.year, err)
		}
		fmt.Fprintf(os.Stdout, "Imported season %d (%d matches)\n", s.year, len(s.matches))
	}
	return nil
}

func yearFromFilename(path string) (int, error) {
	m := seasonFileRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, fmt.Errorf("cannot infer season year from %q, use --year", path)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	return year, nil
}
