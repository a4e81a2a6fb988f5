package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/internal/model"
)

func newCenter(clock *fakeClock) (*NotificationCenter, *ActivityService) {
	act := NewActivityService()
	c := NewNotificationCenter(5*time.Second, 400*time.Millisecond, act)
	c.now = clock.now
	return c, act
}

func TestToastLifecycle(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	c, _ := newCenter(clock)

	toast := c.Trigger("Riaz")
	assert.Equal(t, model.ToastVisible, toast.State)
	assert.Equal(t, 1, c.Count())

	clock.advance(4999 * time.Millisecond)
	require.Len(t, c.Active(), 1)
	assert.Equal(t, model.ToastVisible, c.Active()[0].State)

	clock.advance(time.Millisecond)
	require.Len(t, c.Active(), 1)
	assert.Equal(t, model.ToastExiting, c.Active()[0].State)

	clock.advance(400 * time.Millisecond)
	assert.Empty(t, c.Active())
	assert.Equal(t, 0, c.Count())
}

func TestToastCycleAndActivity(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	c, act := newCenter(clock)

	var titles []string
	for i := 0; i < 5; i++ {
		titles = append(titles, c.Trigger("Riaz").Title)
	}
	assert.Equal(t, []string{"Upload Complete", "New Suggestion", "API Key Low Credit", "Failed to Post", "Upload Complete"}, titles)

	active := c.Active()
	require.Len(t, active, 5)
	assert.Equal(t, "Upload Complete", active[0].Title)

	logs := act.List()
	require.Len(t, logs, 5)
	assert.Equal(t, `triggered a notification: "Upload Complete"`, logs[0].Action)
}

func TestToastDismiss(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	c, _ := newCenter(clock)

	first := c.Trigger("")
	second := c.Trigger("")
	clock.advance(time.Second)

	require.NoError(t, c.Dismiss(first.ID))
	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, model.ToastExiting, active[0].State)
	assert.Equal(t, model.ToastVisible, active[1].State)

	clock.advance(400 * time.Millisecond)
	active = c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	assert.ErrorIs(t, c.Dismiss(first.ID), ErrNotFound)
	assert.ErrorIs(t, c.Dismiss("missing"), ErrNotFound)
}
