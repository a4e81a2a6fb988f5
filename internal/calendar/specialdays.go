package calendar

import (
	"fmt"
	"sort"

	"content-hub/internal/model"
)

var defaultSpecialDays = []model.SpecialDay{
	{Date: "01-01", Name: "New Year's Day", Type: model.International, Suggestion: "Launch a 'New Year, New Goals' campaign."},
	{Date: "02-14", Name: "Valentine's Day", Type: model.International, Suggestion: "Run a contest for the most romantic story."},
	{Date: "03-08", Name: "International Women's Day", Type: model.International, Suggestion: "Highlight influential women in your industry."},
	{Date: "03-20", Name: "International Day of Happiness", Type: model.International, Suggestion: "Share content that brings joy and positivity."},
	{Date: "04-22", Name: "Earth Day", Type: model.International, Suggestion: "Promote your brand's sustainability efforts."},
	{Date: "05-01", Name: "International Workers' Day", Type: model.International, Suggestion: "Thank your team and celebrate their hard work."},
	{Date: "06-21", Name: "International Yoga Day", Type: model.International, Suggestion: "Post about wellness and mental health benefits."},
	{Date: "10-31", Name: "Halloween", Type: model.International, Suggestion: "Host a spooky-themed giveaway or photo contest."},
	{Date: "11-03", Name: "UAE Flag Day", Type: model.UAE, Suggestion: "Share patriotic content and celebrate national pride."},
	{Date: "12-02", Name: "UAE National Day", Type: model.UAE, Suggestion: "Celebrate the spirit of the union with special offers."},
	{Date: "12-25", Name: "Christmas Day", Type: model.International, Suggestion: "Share festive greetings and holiday-themed content."},
	{Date: "12-31", Name: "New Year's Eve", Type: model.International, Suggestion: "Post a year-in-review and tease upcoming announcements."},
}

// SpecialDays is a read-only table keyed by MM-DD.
type SpecialDays struct {
	byKey   map[string]model.SpecialDay
	ordered []model.SpecialDay
}

func NewSpecialDays(days []model.SpecialDay) *SpecialDays {
	t := &SpecialDays{byKey: make(map[string]model.SpecialDay, len(days))}
	for _, d := range days {
		t.byKey[d.Date] = d
	}
	for _, d := range t.byKey {
		t.ordered = append(t.ordered, d)
	}
	sort.Slice(t.ordered, func(i, j int) bool { return t.ordered[i].Date < t.ordered[j].Date })
	return t
}

func DefaultSpecialDays() *SpecialDays { return NewSpecialDays(defaultSpecialDays) }

func (t *SpecialDays) Lookup(key string) (model.SpecialDay, bool) {
	d, ok := t.byKey[key]
	return d, ok
}

func (t *SpecialDays) All() []model.SpecialDay {
	return append([]model.SpecialDay(nil), t.ordered...)
}

// MarqueeSuggestions renders one ticker line per day, dated DD/MM.
func (t *SpecialDays) MarqueeSuggestions() []string {
	out := make([]string, 0, len(t.ordered))
	for _, d := range t.ordered {
		out = append(out, fmt.Sprintf("On %s/%s (%s): %s", d.Date[3:5], d.Date[0:2], d.Name, d.Suggestion))
	}
	return out
}
