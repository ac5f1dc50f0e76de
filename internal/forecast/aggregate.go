// Package forecast collapses a provider's 3-hour forecast stream into at most
// five daily summaries.
package forecast

import (
	"math"
	"time"

	"github.com/revampedplant756/weather-glasses-app/internal/weather"
)

// MaxDays caps the aggregated output; the provider emits readings in
// chronological order, so the first five date groups are the soonest five days.
const MaxDays = 5

// Day is one aggregated forecast day.
type Day struct {
	Date        string `json:"date"` // "2006-01-02"
	Weekday     string `json:"weekday"`
	HighC       int    `json:"highC"`
	LowC        int    `json:"lowC"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Position    int    `json:"position"`
}

type dayGroup struct {
	high, low float64
	// distinct descriptions/icons in encounter order, so ties resolve to the
	// first-seen value
	descOrder []string
	descCount map[string]int
	iconOrder []string
	iconCount map[string]int
}

// Aggregate partitions readings by calendar day (first-seen date order),
// computes per-day high/low and the most frequent condition, and truncates to
// MaxDays. An empty input yields an empty result.
func Aggregate(readings []weather.IntervalReading) []Day {
	var order []string
	groups := make(map[string]*dayGroup)

	for _, r := range readings {
		g, ok := groups[r.DateKey]
		if !ok {
			g = &dayGroup{
				high:      r.TempC,
				low:       r.TempC,
				descCount: make(map[string]int),
				iconCount: make(map[string]int),
			}
			groups[r.DateKey] = g
			order = append(order, r.DateKey)
		}
		if r.TempC > g.high {
			g.high = r.TempC
		}
		if r.TempC < g.low {
			g.low = r.TempC
		}
		if _, seen := g.descCount[r.Description]; !seen {
			g.descOrder = append(g.descOrder, r.Description)
		}
		g.descCount[r.Description]++
		if _, seen := g.iconCount[r.Icon]; !seen {
			g.iconOrder = append(g.iconOrder, r.Icon)
		}
		g.iconCount[r.Icon]++
	}

	if len(order) > MaxDays {
		order = order[:MaxDays]
	}

	days := make([]Day, 0, len(order))
	for i, key := range order {
		g := groups[key]
		days = append(days, Day{
			Date:        key,
			Weekday:     weekdayName(key),
			HighC:       int(math.Round(g.high)),
			LowC:        int(math.Round(g.low)),
			Description: mostFrequent(g.descOrder, g.descCount),
			Icon:        mostFrequent(g.iconOrder, g.iconCount),
			Position:    i,
		})
	}
	return days
}

// mostFrequent walks values in encounter order so the first-seen value wins
// frequency ties.
func mostFrequent(order []string, counts map[string]int) string {
	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

func weekdayName(dateKey string) string {
	t, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}
