package league

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// points maps a finishing place to season points. Places beyond 10th
// score nothing.
var points = map[int]float64{1: 14, 2: 11, 3: 9, 4: 7, 5: 5, 6: 4, 7: 3, 8: 2, 9: 1, 10: 0.5}

// PointsFor returns the season points awarded for a finishing place.
func PointsFor(place int) float64 { return points[place] }

const (
	standingsPrefix = "event_"
	standingsSuffix = "_standings"
)

// IsStandingsSheet reports whether a sheet name follows the
// Event_<N>_Standings convention, ignoring case.
func IsStandingsSheet(name string) bool {
	n := strings.ToLower(name)
	return strings.HasPrefix(n, standingsPrefix) &&
		strings.HasSuffix(n, standingsSuffix) &&
		len(n) > len(standingsPrefix)+len(standingsSuffix)
}

// StandingsSheetName returns the conventional sheet name for an event.
func StandingsSheetName(event int) string {
	return fmt.Sprintf("Event_%d_Standings", event)
}

// eventNumber extracts N from an Event_<N>_Standings sheet name.
func eventNumber(name string) (int, bool) {
	if !IsStandingsSheet(name) {
		return 0, false
	}
	n := strings.ToLower(name)
	mid := n[len(standingsPrefix) : len(n)-len(standingsSuffix)]
	v, err := strconv.Atoi(mid)
	if err != nil {
		return 0, false
	}
	return v, true
}

// LeaderboardRow is one player's cumulative season line.
type LeaderboardRow struct {
	Player string
	Points float64
	KOs    int
	Events int
}

// Leaderboard re-derives the cumulative season ranking from every
// standings sheet in the workbook. Nothing is cached or persisted between
// calls.
//
// Sheets missing a player or place column are skipped; rows whose place is
// not numeric (non-finishers, header artifacts) are dropped. The result is
// sorted descending by (points, KOs); ties beyond that keep
// first-appearance order, a stable-sort guarantee.
func Leaderboard(wb *Workbook) []LeaderboardRow {
	index := make(map[string]int)
	var rows []LeaderboardRow
	for _, name := range wb.Names() {
		if !IsStandingsSheet(name) {
			continue
		}
		s := wb.Sheet(name)
		if s.Empty() {
			continue
		}
		cols, err := ResolveColumns(s, standingsFields)
		if err != nil {
			continue
		}
		for _, r := range s.Rows {
			place, ok := cellFloat(r[cols["place"]])
			if !ok {
				continue
			}
			player := cellString(r[cols["player"]])
			if player == "" {
				continue
			}
			kos := 0
			if cols.Has("kos") {
				if v, ok := cellFloat(r[cols["kos"]]); ok {
					kos = int(v)
				}
			}
			i, seen := index[player]
			if !seen {
				i = len(rows)
				index[player] = i
				rows = append(rows, LeaderboardRow{Player: player})
			}
			if place == math.Trunc(place) {
				rows[i].Points += PointsFor(int(place))
			}
			rows[i].KOs += kos
			rows[i].Events++
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].KOs > rows[j].KOs
	})
	return rows
}
