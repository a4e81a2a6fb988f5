// Package calendar derives the month view of the content calendar: which
// days are displayed, and what each day carries.
package calendar

import (
	"fmt"
	"time"

	"content-hub/internal/model"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	dayKey      = "01-02"
)

var WeekdayLabels = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// DayCell is one square of the month grid.
type DayCell struct {
	Date       time.Time         `json:"-"`
	DateKey    string            `json:"date"`
	Day        int               `json:"day"`
	InMonth    bool              `json:"in_month"`
	IsToday    bool              `json:"is_today"`
	Posts      []model.Post      `json:"posts"`
	HasUpload  bool              `json:"has_upload"`
	PreviewURL string            `json:"preview_url,omitempty"`
	SpecialDay *model.SpecialDay `json:"special_day,omitempty"`
}

type MonthGrid struct {
	Year          int         `json:"year"`
	Month         time.Month  `json:"month"`
	Title         string      `json:"title"`
	WeekdayLabels []string    `json:"weekday_labels"`
	Weeks         [][]DayCell `json:"weeks"`
}

// Cells flattens the grid row by row.
func (g MonthGrid) Cells() []DayCell {
	out := make([]DayCell, 0, len(g.Weeks)*7)
	for _, w := range g.Weeks {
		out = append(out, w...)
	}
	return out
}

func DateKey(t time.Time) string { return t.Format(DateLayout) }

// ParseDateKey reads a YYYY-MM-DD key. Calendar dates are held at UTC
// midnight so stepping them never lands on a skipped local midnight.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ParseMonth reads the YYYY-MM form used by the API.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return t, nil
}

// MonthStart returns the 1st of ref's month, read in ref's own zone.
func MonthStart(ref time.Time) time.Time {
	y, m, _ := ref.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func NextMonth(ref time.Time) time.Time { return MonthStart(ref).AddDate(0, 1, 0) }
func PrevMonth(ref time.Time) time.Time { return MonthStart(ref).AddDate(0, -1, 0) }

// gridRows is the number of Sunday-started weeks needed to show the month.
func gridRows(start time.Time) int {
	daysIn := start.AddDate(0, 1, -1).Day()
	return (int(start.Weekday()) + daysIn + 6) / 7
}

// DisplayRange returns the Sunday on or before the 1st and the Saturday on
// or after the last day of the month of ref.
func DisplayRange(ref time.Time) (first, last time.Time) {
	start := MonthStart(ref)
	first = start.AddDate(0, 0, -int(start.Weekday()))
	last = first.AddDate(0, 0, gridRows(start)*7-1)
	return first, last
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BuildMonth lays out the month of ref as whole weeks, Sunday first. Posts
// are keyed by DateKey; days may be nil.
func BuildMonth(ref, today time.Time, posts map[string][]model.Post, days *SpecialDays) MonthGrid {
	start := MonthStart(ref)
	first, _ := DisplayRange(ref)
	g := MonthGrid{
		Year:          start.Year(),
		Month:         start.Month(),
		Title:         start.Month().String(),
		WeekdayLabels: WeekdayLabels,
	}

	n := gridRows(start) * 7
	var week []DayCell
	for i := 0; i < n; i++ {
		d := first.AddDate(0, 0, i)
		key := DateKey(d)
		cell := DayCell{
			Date:    d,
			DateKey: key,
			Day:     d.Day(),
			InMonth: d.Month() == start.Month() && d.Year() == start.Year(),
			IsToday: sameDay(d, today),
			Posts:   posts[key],
		}
		if cell.Posts == nil {
			cell.Posts = []model.Post{}
		}
		for _, p := range cell.Posts {
			if p.HasFile() {
				cell.HasUpload = true
				cell.PreviewURL = PreviewURL(p.ID)
				break
			}
		}
		if days != nil {
			if sd, ok := days.Lookup(d.Format(dayKey)); ok {
				cell.SpecialDay = &sd
			}
		}

		week = append(week, cell)
		if len(week) == 7 {
			g.Weeks = append(g.Weeks, week)
			week = nil
		}
	}
	return g
}
