// Package charts renders rivalry statistics as interactive HTML charts.
package charts

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lmendes/go-atp-h2h/internal/h2h"
)

// seriesColors are the two line colors, in query order.
var seriesColors = []string{"#5470C6", "#EE6666"}

// RenderRivalryTrend writes an HTML line chart of wins per year for both
// players to outputPath. The trend is already zero-filled across gap years,
// so the x-axis is contiguous.
func RenderRivalryTrend(res h2h.HeadToHead, outputPath string) error {
	if len(res.Trend) == 0 {
		return fmt.Errorf("no meetings between %s and %s", res.Player1, res.Player2)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "500px",
			Theme:  "light",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s vs %s", res.Player1, res.Player2),
			Subtitle: fmt.Sprintf("Wins per year, %d-%d overall", res.Wins1, res.Wins2),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	years := make([]string, len(res.Trend))
	wins1 := make([]opts.LineData, len(res.Trend))
	wins2 := make([]opts.LineData, len(res.Trend))
	for i, p := range res.Trend {
		years[i] = strconv.Itoa(p.Year)
		wins1[i] = opts.LineData{Value: p.Wins[0]}
		wins2[i] = opts.LineData{Value: p.Wins[1]}
	}

	line.SetXAxis(years)
	addPlayerSeries(line, res.Player1, wins1, seriesColors[0])
	addPlayerSeries(line, res.Player2, wins2, seriesColors[1])

	return renderToFile(line, outputPath)
}

func addPlayerSeries(line *charts.Line, name string, data []opts.LineData, color string) {
	line.AddSeries(name, data).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: color,
			}),
		)
}

// RenderSurfaceBars writes an HTML bar chart of the surface breakdown to
// outputPath, one bar group per surface with a bar per player.
func RenderSurfaceBars(res h2h.HeadToHead, outputPath string) error {
	if len(res.BySurface.Rows) == 0 {
		return fmt.Errorf("no meetings between %s and %s", res.Player1, res.Player2)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "500px",
			Theme:  "light",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s vs %s by surface", res.Player1, res.Player2),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	surfaces := make([]string, len(res.BySurface.Rows))
	wins1 := make([]opts.BarData, len(res.BySurface.Rows))
	wins2 := make([]opts.BarData, len(res.BySurface.Rows))
	for i, row := range res.BySurface.Rows {
		surfaces[i] = row.Value
		wins1[i] = opts.BarData{Value: row.Wins[0]}
		wins2[i] = opts.BarData{Value: row.Wins[1]}
	}

	bar.SetXAxis(surfaces).
		AddSeries(res.Player1, wins1).
		AddSeries(res.Player2, wins2)

	return renderToFile(bar, outputPath)
}

type renderer interface {
	Render(w io.Writer) error
}

func renderToFile(r renderer, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := r.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// OpenInBrowser opens the given file in the platform's default browser.
func OpenInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
