package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lmendes/go-atp-h2h/internal/model"
)

// dateLayout is how tournament dates are stored; lexicographic order equals
// chronological order.
const dateLayout = "2006-01-02"

// SeasonExists returns true if a season with the given year is already stored.
func (db *DB) SeasonExists(year int) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM seasons WHERE year = ?", year).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertSeason stores one season and all its matches in a single transaction.
// Re-inserting a stored season replaces it entirely, so loads are idempotent
// and a season is never half-stored.
func (db *DB) InsertSeason(year int, matches []model.Match) error {
	first, last := dateRange(matches)

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM matches WHERE season = ?", year); err != nil {
		return fmt.Errorf("clear season %d: %w", year, err)
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO seasons(year, match_count, first_date, last_date)
		VALUES (?, ?, ?, ?)`,
		year, len(matches), first.Format(dateLayout), last.Format(dateLayout),
	); err != nil {
		return fmt.Errorf("insert season %d: %w", year, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO matches(
			season, tourney_date, tourney_name, tourney_level,
			surface, round, winner_name, loser_name, score
		) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range matches {
		_, err = stmt.Exec(
			year, m.Date.Format(dateLayout), m.Tournament, m.Level,
			m.Surface.String(), m.Round, m.Winner, m.Loser, m.Score,
		)
		if err != nil {
			return fmt.Errorf("insert match %s vs %s: %w", m.Winner, m.Loser, err)
		}
	}
	return tx.Commit()
}

// LoadCorpus returns every stored match sorted by tournament date ascending.
// The result is the session's immutable corpus, passed explicitly to the h2h
// query functions.
func (db *DB) LoadCorpus() ([]model.Match, error) {
	rows, err := db.conn.Query(`
		SELECT season, tourney_date, tourney_name, tourney_level,
		       surface, round, winner_name, loser_name, score
		FROM matches ORDER BY tourney_date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SearchPlayers returns distinct player names containing the term,
// case-insensitively, sorted alphabetically.
func (db *DB) SearchPlayers(term string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT DISTINCT name FROM (
			SELECT winner_name AS name FROM matches
			UNION
			SELECT loser_name AS name FROM matches
		)
		WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
		ORDER BY name`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// ListSeasons returns all stored season summaries ordered by year ascending.
func (db *DB) ListSeasons() ([]model.SeasonSummary, error) {
	rows, err := db.conn.Query(`
		SELECT year, match_count, first_date, last_date
		FROM seasons ORDER BY year ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SeasonSummary
	for rows.Next() {
		var s model.SeasonSummary
		var first, last string
		if err := rows.Scan(&s.Year, &s.Matches, &first, &last); err != nil {
			return nil, err
		}
		if s.FirstDate, err = time.Parse(dateLayout, first); err != nil {
			return nil, fmt.Errorf("season %d first_date: %w", s.Year, err)
		}
		if s.LastDate, err = time.Parse(dateLayout, last); err != nil {
			return nil, fmt.Errorf("season %d last_date: %w", s.Year, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteSeason removes one season and its matches. Deleting an absent season
// is not an error.
func (db *DB) DeleteSeason(year int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM matches WHERE season = ?", year); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM seasons WHERE year = ?", year); err != nil {
		return err
	}
	return tx.Commit()
}

// GetOverview returns database-wide aggregates for the summary command.
func (db *DB) GetOverview() (model.CorpusOverview, error) {
	var ov model.CorpusOverview
	var earliest, latest sql.NullString

	err := db.conn.QueryRow(`
		SELECT COUNT(1),
		       (SELECT COUNT(1) FROM seasons),
		       MIN(tourney_date), MAX(tourney_date)
		FROM matches`).
		Scan(&ov.TotalMatches, &ov.Seasons, &earliest, &latest)
	if err != nil {
		return ov, err
	}
	if earliest.Valid {
		if ov.Earliest, err = time.Parse(dateLayout, earliest.String); err != nil {
			return ov, err
		}
	}
	if latest.Valid {
		if ov.Latest, err = time.Parse(dateLayout, latest.String); err != nil {
			return ov, err
		}
	}

	err = db.conn.QueryRow(`
		SELECT COUNT(1) FROM (
			SELECT winner_name AS name FROM matches
			UNION
			SELECT loser_name AS name FROM matches
		)`).Scan(&ov.UniquePlayers)
	return ov, err
}

// GetSurfaceStats returns per-surface match counts, most played first.
func (db *DB) GetSurfaceStats() ([]model.SurfaceCount, error) {
	rows, err := db.conn.Query(`
		SELECT surface, COUNT(1) AS n FROM matches
		GROUP BY surface ORDER BY n DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SurfaceCount
	for rows.Next() {
		var surfaceStr string
		var sc model.SurfaceCount
		if err := rows.Scan(&surfaceStr, &sc.Matches); err != nil {
			return nil, err
		}
		sc.Surface = model.ParseSurface(surfaceStr)
		out = append(out, sc)
	}
	return out, rows.Err()
}

// GetTopPlayers returns the players with the most recorded matches.
func (db *DB) GetTopPlayers(limit int) ([]model.PlayerActivity, error) {
	rows, err := db.conn.Query(`
		SELECT name, COUNT(1) AS matches, SUM(won) AS wins FROM (
			SELECT winner_name AS name, 1 AS won FROM matches
			UNION ALL
			SELECT loser_name AS name, 0 AS won FROM matches
		)
		GROUP BY name ORDER BY matches DESC, name ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerActivity
	for rows.Next() {
		var p model.PlayerActivity
		if err := rows.Scan(&p.Name, &p.Matches, &p.Wins); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// scanMatch reads one match row from the LoadCorpus column order.
func scanMatch(rows *sql.Rows) (model.Match, error) {
	var m model.Match
	var dateStr, surfaceStr string
	if err := rows.Scan(
		&m.Season, &dateStr, &m.Tournament, &m.Level,
		&surfaceStr, &m.Round, &m.Winner, &m.Loser, &m.Score,
	); err != nil {
		return m, err
	}
	var err error
	if m.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return m, fmt.Errorf("stored tourney_date %q: %w", dateStr, err)
	}
	m.Surface = model.ParseSurface(surfaceStr)
	return m, nil
}

// dateRange returns the earliest and latest dates in a season's matches.
// Zero times for an empty season.
func dateRange(matches []model.Match) (first, last time.Time) {
	for _, m := range matches {
		if first.IsZero() || m.Date.Before(first) {
			first = m.Date
		}
		if last.IsZero() || m.Date.After(last) {
			last = m.Date
		}
	}
	return first, last
}
