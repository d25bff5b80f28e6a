package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/charts"
	"github.com/lmendes/go-atp-h2h/internal/h2h"
	"github.com/lmendes/go-atp-h2h/internal/storage"
)

var (
	chartOut      string
	chartOpen     bool
	chartSurfaces bool
)

var chartCmd = &cobra.Command{
	Use:   "chart <player1> <player2>",
	Short: "Render a rivalry's yearly trend as an HTML chart",
	Long: `Renders the yearly win trend of a head-to-head as an interactive HTML
line chart. With --surfaces, renders the surface breakdown as a bar chart
instead.

Example:
  atph2h chart "Novak Djokovic" "Roger Federer" --out rivalry.html --open`,
	Args: cobra.ExactArgs(2),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartOut, "out", "h2h.html", "output HTML file")
	chartCmd.Flags().BoolVar(&chartOpen, "open", false, "open the chart in the default browser")
	chartCmd.Flags().BoolVar(&chartSurfaces, "surfaces", false, "chart the surface breakdown instead of the yearly trend")
}

func runChart(cmd *cobra.Command, args []string) error {
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

	res := h2h.Compute(corpus, p1, p2)

	if chartSurfaces {
		err = charts.RenderSurfaceBars(res, chartOut)
	} else {
		err = charts.RenderRivalryTrend(res, chartOut)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", chartOut)

	if chartOpen {
		if err := charts.OpenInBrowser(chartOut); err != nil {
			return fmt.Errorf("open browser: %w", err)
		}
	}
	return nil
}
