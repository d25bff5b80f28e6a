package parser

import (
	"strings"
	"testing"

	"github.com/lmendes/go-atp-h2h/internal/model"
)

const seasonHeader = "tourney_id,tourney_name,surface,draw_size,tourney_level,tourney_date,match_num,winner_name,loser_name,score,round\n"

func TestParseSeason(t *testing.T) {
	data := seasonHeader +
		"2015-540,Wimbledon,Grass,128,G,20150629,701,Novak Djokovic,Roger Federer,7-6(1) 6-7(10) 6-4 6-3,F\n" +
		"2015-560,US Open,Hard,128,G,20150831,702,Novak Djokovic,Roger Federer,6-4 5-7 6-4 6-4,F\n"

	matches, err := ParseSeason(strings.NewReader(data), 2015)
	if err != nil {
		t.Fatalf("ParseSeason: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	m := matches[0]
	if m.Tournament != "Wimbledon" {
		t.Errorf("Tournament = %q", m.Tournament)
	}
	if m.Surface != model.SurfaceGrass {
		t.Errorf("Surface = %v, want Grass", m.Surface)
	}
	if m.Round != "F" || m.Level != "G" {
		t.Errorf("Round/Level = %q/%q", m.Round, m.Level)
	}
	if m.Winner != "Novak Djokovic" || m.Loser != "Roger Federer" {
		t.Errorf("players = %q / %q", m.Winner, m.Loser)
	}
	if got := m.Date.Format("2006-01-02"); got != "2015-06-29" {
		t.Errorf("Date = %s, want 2015-06-29", got)
	}
	if m.Season != 2015 {
		t.Errorf("Season = %d", m.Season)
	}
}

func TestParseSeason_MalformedDateIsFatal(t *testing.T) {
	data := seasonHeader +
		"2015-540,Wimbledon,Grass,128,G,20150629,701,Novak Djokovic,Roger Federer,6-4 6-4,F\n" +
		"2015-560,US Open,Hard,128,G,2015-08,702,Novak Djokovic,Roger Federer,6-4 6-4,F\n"

	_, err := ParseSeason(strings.NewReader(data), 2015)
	if err == nil {
		t.Fatal("expected error for malformed tourney_date")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error should carry row context, got: %v", err)
	}
}

func TestParseSeason_MissingColumnIsFatal(t *testing.T) {
	data := "tourney_name,surface,round,winner_name,loser_name,score\n" +
		"Wimbledon,Grass,F,Novak Djokovic,Roger Federer,6-4 6-4\n"

	_, err := ParseSeason(strings.NewReader(data), 2015)
	if err == nil || !strings.Contains(err.Error(), "tourney_date") {
		t.Errorf("expected missing-column error for tourney_date, got: %v", err)
	}
}

func TestParseSeason_BlankPlayerIsFatal(t *testing.T) {
	data := seasonHeader +
		"2015-540,Wimbledon,Grass,128,G,20150629,701,,Roger Federer,6-4 6-4,F\n"

	_, err := ParseSeason(strings.NewReader(data), 2015)
	if err == nil {
		t.Fatal("expected error for blank winner name")
	}
}

func TestParseSeason_UnknownSurface(t *testing.T) {
	data := seasonHeader +
		"2015-540,Davis Cup,,4,D,20150306,1,Novak Djokovic,Roger Federer,6-4 6-4,RR\n"

	matches, err := ParseSeason(strings.NewReader(data), 2015)
	if err != nil {
		t.Fatalf("ParseSeason: %v", err)
	}
	if matches[0].Surface != model.SurfaceUnknown {
		t.Errorf("blank surface should map to SurfaceUnknown, got %v", matches[0].Surface)
	}
}

func TestParseSeason_EmptyFile(t *testing.T) {
	matches, err := ParseSeason(strings.NewReader(seasonHeader), 2015)
	if err != nil {
		t.Fatalf("header-only file should parse: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}
