package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmendes/go-atp-h2h/internal/h2h"
	"github.com/lmendes/go-atp-h2h/internal/model"
	"github.com/lmendes/go-atp-h2h/internal/storage"
)

var exportOut string

// h2hDocument is the exported JSON schema for one head-to-head result.
type h2hDocument struct {
	Player1     string          `json:"player1"`
	Player2     string          `json:"player2"`
	Wins1       int             `json:"player1_wins"`
	Wins2       int             `json:"player2_wins"`
	Meetings    []meetingRecord `json:"meetings"`
	BySurface   []breakdownRow  `json:"by_surface"`
	ByRound     []breakdownRow  `json:"by_round"`
	Trend       []trendRow      `json:"yearly_trend"`
	GeneratedAt string          `json:"generated_at"`
}

type meetingRecord struct {
	Date       string `json:"date"`
	Tournament string `json:"tournament"`
	Level      string `json:"level,omitempty"`
	Surface    string `json:"surface"`
	Round      string `json:"round"`
	Winner     string `json:"winner"`
	Score      string `json:"score"`
}

type breakdownRow struct {
	Value string `json:"value"`
	Wins1 int    `json:"player1_wins"`
	Wins2 int    `json:"player2_wins"`
}

type trendRow struct {
	Year  int `json:"year"`
	Wins1 int `json:"player1_wins"`
	Wins2 int `json:"player2_wins"`
}

var exportCmd = &cobra.Command{
	Use:   "export <player1> <player2>",
	Short: "Export a head-to-head result as JSON",
	Long: `Computes the head-to-head record between two players and writes the
full result (meetings, win counts, breakdowns, yearly trend) as a JSON
document to --out, or stdout when --out is omitted.

Example:
  atph2h export "Novak Djokovic" "Roger Federer" --out djokovic-federer.json`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
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
	doc := buildDocument(res)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	out = append(out, '\n')

	if exportOut == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(exportOut, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	return nil
}

func buildDocument(res h2h.HeadToHead) h2hDocument {
	doc := h2hDocument{
		Player1:     res.Player1,
		Player2:     res.Player2,
		Wins1:       res.Wins1,
		Wins2:       res.Wins2,
		Meetings:    []meetingRecord{},
		BySurface:   convertBreakdown(res.BySurface),
		ByRound:     convertBreakdown(res.ByRound),
		Trend:       []trendRow{},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, m := range res.Meetings {
		doc.Meetings = append(doc.Meetings, convertMeeting(m))
	}
	for _, p := range res.Trend {
		doc.Trend = append(doc.Trend, trendRow{Year: p.Year, Wins1: p.Wins[0], Wins2: p.Wins[1]})
	}
	return doc
}

func convertMeeting(m model.Match) meetingRecord {
	return meetingRecord{
		Date:       m.Date.Format("2006-01-02"),
		Tournament: m.Tournament,
		Level:      m.Level,
		Surface:    m.Surface.String(),
		Round:      m.Round,
		Winner:     m.Winner,
		Score:      m.Score,
	}
}

func convertBreakdown(b h2h.Breakdown) []breakdownRow {
	rows := []breakdownRow{}
	for _, r := range b.Rows {
		rows = append(rows, breakdownRow{Value: r.Value, Wins1: r.Wins[0], Wins2: r.Wins[1]})
	}
	return rows
}
