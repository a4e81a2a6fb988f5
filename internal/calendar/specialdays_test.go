package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/internal/model"
)

func TestSpecialDaysLookup(t *testing.T) {
	days := DefaultSpecialDays()

	d, ok := days.Lookup("11-03")
	require.True(t, ok)
	assert.Equal(t, "UAE Flag Day", d.Name)
	assert.Equal(t, model.UAE, d.Type)

	_, ok = days.Lookup("07-28")
	assert.False(t, ok)

	all := days.All()
	assert.Len(t, all, 12)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Date, all[i].Date)
	}
}

func TestMarqueeSuggestions(t *testing.T) {
	days := NewSpecialDays([]model.SpecialDay{
		{Date: "12-02", Name: "UAE National Day", Suggestion: "Celebrate."},
		{Date: "01-01", Name: "New Year's Day", Suggestion: "Launch."},
	})
	assert.Equal(t, []string{
		"On 01/01 (New Year's Day): Launch.",
		"On 02/12 (UAE National Day): Celebrate.",
	}, days.MarqueeSuggestions())
}
