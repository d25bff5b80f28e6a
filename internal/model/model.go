package model

import (
	"strings"
	"time"
)

// Surface is the playing-court material category of a match.
type Surface int

const (
	SurfaceUnknown Surface = iota
	SurfaceHard
	SurfaceClay
	SurfaceGrass
	SurfaceCarpet
)

func (s Surface) String() string {
	switch s {
	case SurfaceHard:
		return "Hard"
	case SurfaceClay:
		return "Clay"
	case SurfaceGrass:
		return "Grass"
	case SurfaceCarpet:
		return "Carpet"
	default:
		return "?"
	}
}

// ParseSurface maps a CSV surface field to a Surface, case-insensitively.
// Anything outside the four tour surfaces maps to SurfaceUnknown.
func ParseSurface(s string) Surface {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return SurfaceHard
	case "clay":
		return SurfaceClay
	case "grass":
		return SurfaceGrass
	case "carpet":
		return SurfaceCarpet
	default:
		return SurfaceUnknown
	}
}

// Surfaces lists the tour surfaces in canonical display order.
var Surfaces = []Surface{SurfaceHard, SurfaceClay, SurfaceGrass, SurfaceCarpet}

// Match is one historical tour match as loaded from a season file.
type Match struct {
	Date       time.Time // tournament start date
	Tournament string
	Level      string // tour level code, e.g. "G" (Grand Slam), "M" (Masters), "A"
	Surface    Surface
	Round      string // tournament stage: R128..R16, QF, SF, F, RR, BR
	Winner     string
	Loser      string
	Score      string // freeform set-by-set notation
	Season     int    // season year the record was loaded under
}

// SeasonSummary is a lightweight record for the list command.
type SeasonSummary struct {
	Year      int
	Matches   int
	FirstDate time.Time
	LastDate  time.Time
}

// CorpusOverview holds database-wide aggregates for the summary command.
type CorpusOverview struct {
	TotalMatches  int
	Seasons       int
	UniquePlayers int
	Earliest      time.Time
	Latest        time.Time
}

// SurfaceCount is one row of the per-surface corpus breakdown.
type SurfaceCount struct {
	Surface Surface
	Matches int
}

// PlayerActivity is one row of the busiest-players corpus breakdown.
type PlayerActivity struct {
	Name    string
	Matches int
	Wins    int
}

// WinPct returns the player's win percentage over their recorded matches.
func (p *PlayerActivity) WinPct() float64 {
	if p.Matches == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Matches) * 100
}
