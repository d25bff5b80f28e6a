// Package h2h computes head-to-head results between two players over an
// in-memory match corpus. All functions are pure: the corpus is threaded as
// an explicit argument and never mutated.
package h2h

import (
	"sort"
	"strings"

	"github.com/lmendes/go-atp-h2h/internal/model"
)

// BreakdownRow is one dimension value with win counts for the two queried
// players, in query order. Counts are zero-filled: a player with no wins on
// the row's value carries an explicit 0.
type BreakdownRow struct {
	Value string
	Wins  [2]int
}

// Breakdown is a pivot of the filtered meetings over one dimension
// (surface or round).
type Breakdown struct {
	Players [2]string
	Rows    []BreakdownRow
}

// TrendPoint is one year of the rivalry with win counts in query order.
type TrendPoint struct {
	Year int
	Wins [2]int
}

// HeadToHead is the full derived result for one player pair.
type HeadToHead struct {
	Player1, Player2 string
	Meetings         []model.Match // date descending
	Wins1, Wins2     int
	BySurface        Breakdown
	ByRound          Breakdown
	Trend            []TrendPoint // years ascending, gap years zero-filled
}

// sameName reports whether two player names refer to the same player.
// Matching is case-insensitive equality; spelling variants (diacritics,
// abbreviations) are treated as distinct players.
func sameName(a, b string) bool {
	return a != "" && strings.EqualFold(a, b)
}

// Filter selects every corpus match played between p1 and p2, in either
// winner/loser orientation, sorted by date descending. The sort is stable so
// same-day meetings keep corpus order. An empty result means no prior
// meetings and is not an error.
func Filter(corpus []model.Match, p1, p2 string) []model.Match {
	var out []model.Match
	for _, m := range corpus {
		if (sameName(m.Winner, p1) && sameName(m.Loser, p2)) ||
			(sameName(m.Winner, p2) && sameName(m.Loser, p1)) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// WinCounts counts the filtered meetings won by p1 and by p2. A blank or
// unmatched name simply counts zero wins.
func WinCounts(filtered []model.Match, p1, p2 string) (int, int) {
	var w1, w2 int
	for _, m := range filtered {
		switch {
		case sameName(m.Winner, p1):
			w1++
		case sameName(m.Winner, p2):
			w2++
		}
	}
	return w1, w2
}

// BreakdownBySurface pivots the filtered meetings by surface. Rows appear in
// canonical surface order; surfaces the rivalry was never played on are
// omitted.
func BreakdownBySurface(filtered []model.Match, p1, p2 string) Breakdown {
	b := Breakdown{Players: [2]string{p1, p2}}
	counts := make(map[model.Surface][2]int)
	for _, m := range filtered {
		w := counts[m.Surface]
		addWin(&w, m.Winner, p1, p2)
		counts[m.Surface] = w
	}
	order := append([]model.Surface{}, model.Surfaces...)
	order = append(order, model.SurfaceUnknown)
	for _, s := range order {
		if w, ok := counts[s]; ok {
			b.Rows = append(b.Rows, BreakdownRow{Value: s.String(), Wins: w})
		}
	}
	return b
}

// BreakdownByRound pivots the filtered meetings by tournament round. Rows
// appear in stage order, final first; rounds the rivalry never reached are
// omitted.
func BreakdownByRound(filtered []model.Match, p1, p2 string) Breakdown {
	b := Breakdown{Players: [2]string{p1, p2}}
	counts := make(map[string][2]int)
	for _, m := range filtered {
		w := counts[m.Round]
		addWin(&w, m.Winner, p1, p2)
		counts[m.Round] = w
	}
	rounds := make([]string, 0, len(counts))
	for r := range counts {
		rounds = append(rounds, r)
	}
	sort.Slice(rounds, func(i, j int) bool {
		oi, oj := roundOrder(rounds[i]), roundOrder(rounds[j])
		if oi != oj {
			return oi < oj
		}
		return rounds[i] < rounds[j]
	})
	for _, r := range rounds {
		b.Rows = append(b.Rows, BreakdownRow{Value: r, Wins: counts[r]})
	}
	return b
}

// YearlyTrend counts wins per calendar year for both players. The returned
// slice is contiguous from the first to the last meeting year; years without
// a meeting carry zeros for both players.
func YearlyTrend(filtered []model.Match, p1, p2 string) []TrendPoint {
	if len(filtered) == 0 {
		return nil
	}
	counts := make(map[int][2]int)
	minYear, maxYear := filtered[0].Date.Year(), filtered[0].Date.Year()
	for _, m := range filtered {
		y := m.Date.Year()
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
		w := counts[y]
		addWin(&w, m.Winner, p1, p2)
		counts[y] = w
	}
	out := make([]TrendPoint, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		out = append(out, TrendPoint{Year: y, Wins: counts[y]})
	}
	return out
}

// Compute runs the full pipeline: filter, win counts, both pivots, and the
// yearly trend.
func Compute(corpus []model.Match, p1, p2 string) HeadToHead {
	filtered := Filter(corpus, p1, p2)
	w1, w2 := WinCounts(filtered, p1, p2)
	return HeadToHead{
		Player1:   p1,
		Player2:   p2,
		Meetings:  filtered,
		Wins1:     w1,
		Wins2:     w2,
		BySurface: BreakdownBySurface(filtered, p1, p2),
		ByRound:   BreakdownByRound(filtered, p1, p2),
		Trend:     YearlyTrend(filtered, p1, p2),
	}
}

func addWin(w *[2]int, winner, p1, p2 string) {
	switch {
	case sameName(winner, p1):
		w[0]++
	case sameName(winner, p2):
		w[1]++
	}
}

// roundOrder returns a sort key for tournament stage codes, final first.
func roundOrder(round string) int {
	switch round {
	case "F":
		return 0
	case "BR":
		return 1
	case "SF":
		return 2
	case "QF":
		return 3
	case "R16":
		return 4
	case "R32":
		return 5
	case "R64":
		return 6
	case "R128":
		return 7
	case "RR":
		return 8
	default:
		return 9
	}
}
