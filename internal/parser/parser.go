// Package parser turns ATP season CSV files into match records.
//
// Season files carry one row per match with tournament metadata, winner and
// loser names, and the score. Dates arrive as 8-digit yyyymmdd integers.
// A row that cannot be parsed aborts the whole file: the corpus is assumed
// internally consistent, so a bad row means a bad file, not a droppable row.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lmendes/go-atp-h2h/internal/model"
)

// requiredColumns are the header fields a season file must carry. Season
// files have many more columns (ranks, stats, ioc codes); everything else is
// ignored.
var requiredColumns = []string{
	"tourney_date", "tourney_name", "surface", "round",
	"winner_name", "loser_name", "score",
}

// ParseSeason reads one season CSV and returns its matches in file order.
// year is the season the records are loaded under.
func ParseSeason(r io.Reader, year int) ([]model.Match, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count varies across season files

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var matches []model.Match
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		m, err := parseRow(record, idx, year)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// columnIndex maps required column names to their header positions.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

func parseRow(record []string, idx map[string]int, year int) (model.Match, error) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := parseDate(field("tourney_date"))
	if err != nil {
		return model.Match{}, err
	}

	winner, loser := field("winner_name"), field("loser_name")
	if winner == "" || loser == "" {
		return model.Match{}, fmt.Errorf("blank player name (winner=%q loser=%q)", winner, loser)
	}

	level := ""
	if i, ok := idx["tourney_level"]; ok && i < len(record) {
		level = strings.TrimSpace(record[i])
	}

	return model.Match{
		Date:       date,
		Tournament: field("tourney_name"),
		Level:      level,
		Surface:    model.ParseSurface(field("surface")),
		Round:      field("round"),
		Winner:     winner,
		Loser:      loser,
		Score:      field("score"),
		Season:     year,
	}, nil
}

// parseDate parses the 8-digit yyyymmdd tournament date field.
func parseDate(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, fmt.Errorf("malformed tourney_date %q: want 8-digit yyyymmdd", s)
	}
	d, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed tourney_date %q: %w", s, err)
	}
	return d, nil
}
