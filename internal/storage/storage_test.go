package storage

import (
	"testing"
	"time"

	"github.com/lmendes/go-atp-h2h/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func season2015() []model.Match {
	return []model.Match{
		{
			Date: date("2015-06-29"), Tournament: "Wimbledon", Level: "G",
			Surface: model.SurfaceGrass, Round: "F",
			Winner: "Novak Djokovic", Loser: "Roger Federer",
			Score: "7-6(1) 6-7(10) 6-4 6-3", Season: 2015,
		},
		{
			Date: date("2015-01-19"), Tournament: "Australian Open", Level: "G",
			Surface: model.SurfaceHard, Round: "SF",
			Winner: "Andy Murray", Loser: "Tomas Berdych",
			Score: "6-7(6) 6-0 6-3 7-5", Season: 2015,
		},
	}
}

func TestSeasonInsertAndExists(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertSeason(2015, season2015()); err != nil {
		t.Fatalf("InsertSeason: %v", err)
	}

	exists, err := db.SeasonExists(2015)
	if err != nil {
		t.Fatalf("SeasonExists: %v", err)
	}
	if !exists {
		t.Error("expected season 2015 to exist after insert")
	}

	exists2, _ := db.SeasonExists(1999)
	if exists2 {
		t.Error("expected absent season to not exist")
	}
}

func TestLoadCorpus_DateAscending(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertSeason(2015, season2015()); err != nil {
		t.Fatalf("InsertSeason: %v", err)
	}

	corpus, err := db.LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(corpus) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(corpus))
	}
	if corpus[0].Tournament != "Australian Open" {
		t.Errorf("expected oldest match first, got %s", corpus[0].Tournament)
	}
	if corpus[1].Surface != model.SurfaceGrass || corpus[1].Winner != "Novak Djokovic" {
		t.Errorf("round-trip mismatch: %+v", corpus[1])
	}
	if got := corpus[1].Date.Format("2006-01-02"); got != "2015-06-29" {
		t.Errorf("date round-trip: got %s", got)
	}
}

func TestInsertSeason_ReplaceIsIdempotent(t *testing.T) {
	db := openMemDB(t)

	matches := season2015()
	if err := db.InsertSeason(2015, matches); err != nil {
		t.Fatalf("first InsertSeason: %v", err)
	}
	if err := db.InsertSeason(2015, matches); err != nil {
		t.Fatalf("second InsertSeason should replace, not fail: %v", err)
	}

	corpus, err := db.LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(corpus) != 2 {
		t.Errorf("re-insert should not duplicate matches, got %d", len(corpus))
	}
}

func TestSearchPlayers_CaseInsensitiveSubstring(t *testing.T) {
	db := openMemDB(t)
	db.InsertSeason(2015, season2015())

	names, err := db.SearchPlayers("fede")
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(names) != 1 || names[0] != "Roger Federer" {
		t.Errorf("expected [Roger Federer], got %v", names)
	}

	none, _ := db.SearchPlayers("sampras")
	if len(none) != 0 {
		t.Errorf("expected no results, got %v", none)
	}
}

func TestListSeasons(t *testing.T) {
	db := openMemDB(t)
	db.InsertSeason(2015, season2015())
	db.InsertSeason(2014, []model.Match{{
		Date: date("2014-07-06"), Tournament: "Wimbledon", Level: "G",
		Surface: model.SurfaceGrass, Round: "F",
		Winner: "Novak Djokovic", Loser: "Roger Federer",
		Score: "6-7(7) 6-4 7-6(4) 5-7 6-4", Season: 2014,
	}})

	seasons, err := db.ListSeasons()
	if err != nil {
		t.Fatalf("ListSeasons: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(seasons))
	}
	if seasons[0].Year != 2014 || seasons[1].Year != 2015 {
		t.Errorf("seasons not year-ascending: %v", seasons)
	}
	if seasons[1].Matches != 2 {
		t.Errorf("season 2015 match count = %d, want 2", seasons[1].Matches)
	}
	if got := seasons[1].FirstDate.Format("2006-01-02"); got != "2015-01-19" {
		t.Errorf("season 2015 first date = %s", got)
	}
}

func TestDeleteSeason(t *testing.T) {
	db := openMemDB(t)
	db.InsertSeason(2015, season2015())

	if err := db.DeleteSeason(2015); err != nil {
		t.Fatalf("DeleteSeason: %v", err)
	}
	exists, _ := db.SeasonExists(2015)
	if exists {
		t.Error("season should be gone after delete")
	}
	corpus, _ := db.LoadCorpus()
	if len(corpus) != 0 {
		t.Errorf("matches should be gone after season delete, got %d", len(corpus))
	}

	// Deleting again is a no-op, not an error.
	if err := db.DeleteSeason(2015); err != nil {
		t.Errorf("deleting absent season: %v", err)
	}
}

func TestGetOverview(t *testing.T) {
	db := openMemDB(t)
	db.InsertSeason(2015, season2015())

	ov, err := db.GetOverview()
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.TotalMatches != 2 || ov.Seasons != 1 {
		t.Errorf("overview counts: %+v", ov)
	}
	if ov.UniquePlayers != 4 {
		t.Errorf("UniquePlayers = %d, want 4", ov.UniquePlayers)
	}
	if got := ov.Earliest.Format("2006-01-02"); got != "2015-01-19" {
		t.Errorf("Earliest = %s", got)
	}
	if got := ov.Latest.Format("2006-01-02"); got != "2015-06-29" {
		t.Errorf("Latest = %s", got)
	}
}

func TestGetTopPlayers(t *testing.T) {
	db := openMemDB(t)
	db.InsertSeason(2015, season2015())
	db.InsertSeason(2014, []model.Match{{
		Date: date("2014-07-06"), Tournament: "Wimbledon", Level: "G",
		Surface: model.SurfaceGrass, Round: "F",
		Winner: "Novak Djokovic", Loser: "Roger Federer",
		Score: "6-7(7) 6-4 7-6(4) 5-7 6-4", Season: 2014,
	}})

	top, err := db.GetTopPlayers(2)
	if err != nil {
		t.Fatalf("GetTopPlayers: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}
	if top[0].Matches != 2 {
		t.Errorf("busiest player should have 2 matches, got %d", top[0].Matches)
	}
	for _, p := range top {
		if p.Name == "Novak Djokovic" && p.Wins != 2 {
			t.Errorf("Djokovic wins = %d, want 2", p.Wins)
		}
	}
}
