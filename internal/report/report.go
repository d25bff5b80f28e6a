// Package report renders head-to-head results and corpus summaries as
// terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/lmendes/go-atp-h2h/internal/h2h"
	"github.com/lmendes/go-atp-h2h/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintScoreline prints the rivalry headline, e.g.
// "Novak Djokovic 27-23 Roger Federer (50 meetings)".
func PrintScoreline(w io.Writer, res h2h.HeadToHead) {
	fmt.Fprintf(w, "\n%s %d-%d %s  (%d meetings)\n\n",
		res.Player1, res.Wins1, res.Wins2, res.Player2, len(res.Meetings))
}

// PrintMeetingsTable prints the meeting list, newest first. limit <= 0 prints
// every meeting.
func PrintMeetingsTable(w io.Writer, meetings []model.Match, limit int) {
	if limit > 0 && limit < len(meetings) {
		meetings = meetings[:limit]
	}

	table := newTable(w)
	table.Header("DATE", "TOURNAMENT", "SURFACE", "ROUND", "WINNER", "SCORE")
	for _, m := range meetings {
		table.Append(
			m.Date.Format("2006-01-02"),
			m.Tournament,
			m.Surface.String(),
			m.Round,
			m.Winner,
			m.Score,
		)
	}
	table.Render()
}

// PrintBreakdownTable prints one pivot table (surface or round) with a win
// column per queried player. Counts are zero-filled.
func PrintBreakdownTable(w io.Writer, title string, b h2h.Breakdown) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	if len(b.Rows) == 0 {
		fmt.Fprintln(w, "No meetings.")
		return
	}

	table := newTable(w)
	table.Header(title, b.Players[0], b.Players[1])
	for _, row := range b.Rows {
		table.Append(row.Value, strconv.Itoa(row.Wins[0]), strconv.Itoa(row.Wins[1]))
	}
	table.Render()
}

// PrintTrendTable prints the yearly win trend, zero-filled across gap years.
func PrintTrendTable(w io.Writer, res h2h.HeadToHead) {
	fmt.Fprintf(w, "\n--- By Year ---\n\n")
	if len(res.Trend) == 0 {
		fmt.Fprintln(w, "No meetings.")
		return
	}

	table := newTable(w)
	table.Header("YEAR", res.Player1, res.Player2)
	for _, p := range res.Trend {
		table.Append(strconv.Itoa(p.Year), strconv.Itoa(p.Wins[0]), strconv.Itoa(p.Wins[1]))
	}
	table.Render()
}

// PrintSeasonsTable prints the stored seasons with their date ranges.
func PrintSeasonsTable(w io.Writer, seasons []model.SeasonSummary) {
	table := newTable(w)
	table.Header("SEASON", "MATCHES", "FIRST", "LAST")
	for _, s := range seasons {
		table.Append(
			strconv.Itoa(s.Year),
			strconv.Itoa(s.Matches),
			s.FirstDate.Format("2006-01-02"),
			s.LastDate.Format("2006-01-02"),
		)
	}
	table.Render()
}

// PrintOverview prints the corpus-wide headline numbers.
func PrintOverview(w io.Writer, ov model.CorpusOverview) {
	fmt.Fprintf(w, "\n=== Corpus Summary ===\n\n")
	fmt.Fprintf(w, "  Matches stored : %d\n", ov.TotalMatches)
	fmt.Fprintf(w, "  Seasons        : %d\n", ov.Seasons)
	fmt.Fprintf(w, "  Players seen   : %d\n", ov.UniquePlayers)
	if !ov.Earliest.IsZero() {
		fmt.Fprintf(w, "  Date range     : %s → %s\n",
			ov.Earliest.Format("2006-01-02"), ov.Latest.Format("2006-01-02"))
	}
}

// PrintSurfaceTable prints per-surface match counts.
func PrintSurfaceTable(w io.Writer, stats []model.SurfaceCount) {
	fmt.Fprintf(w, "\n--- Surfaces ---\n\n")
	table := newTable(w)
	table.Header("SURFACE", "MATCHES")
	for _, s := range stats {
		table.Append(s.Surface.String(), strconv.Itoa(s.Matches))
	}
	table.Render()
}

// PrintTopPlayersTable prints the busiest players in the corpus.
func PrintTopPlayersTable(w io.Writer, players []model.PlayerActivity) {
	fmt.Fprintf(w, "\n--- Most Active Players ---\n\n")
	table := newTable(w)
	table.Header("PLAYER", "MATCHES", "WINS", "WIN%")
	for i := range players {
		p := &players[i]
		table.Append(
			p.Name,
			strconv.Itoa(p.Matches),
			strconv.Itoa(p.Wins),
			fmt.Sprintf("%.0f%%", p.WinPct()),
		)
	}
	table.Render()
}

// PrintPlayerList prints player search results, one per line.
func PrintPlayerList(w io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", n)
	}
	fmt.Fprintf(w, "\n%d player(s)\n", len(names))
}
