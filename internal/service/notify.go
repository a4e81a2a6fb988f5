package service

import (
	"sync"
	"time"

	"content-hub/internal/model"
)

var sampleNotifications = []model.Notification{
	{Type: model.NotifySuccess, Title: "Upload Complete", Message: `Your file "launch-creative.jpg" has been saved.`},
	{Type: model.NotifyInfo, Title: "New Suggestion", Message: "Consider a post for International Friendship Day."},
	{Type: model.NotifyWarning, Title: "API Key Low Credit", Message: "Your API key is running low on credits. Please top up."},
	{Type: model.NotifyError, Title: "Failed to Post", Message: "Could not connect to the Instagram API. Please try again."},
}

type toastEntry struct {
	n       model.Notification
	created time.Time
	exitAt  time.Time
}

// NotificationCenter holds the toast stack. A toast is visible for the
// visible period, then exiting for the exit period, then gone.
type NotificationCenter struct {
	mu       sync.Mutex
	toasts   []*toastEntry
	cycle    int
	visible  time.Duration
	exit     time.Duration
	now      func() time.Time
	activity *ActivityService
}

func NewNotificationCenter(visible, exit time.Duration, activity *ActivityService) *NotificationCenter {
	return &NotificationCenter{visible: visible, exit: exit, now: time.Now, activity: activity}
}

// Trigger pushes the next sample notification in rotation.
func (c *NotificationCenter) Trigger(user string) model.Toast {
	c.mu.Lock()
	n := sampleNotifications[c.cycle%len(sampleNotifications)]
	c.cycle++
	n.ID = newID()
	now := c.now()
	e := &toastEntry{n: n, created: now, exitAt: now.Add(c.visible)}
	c.toasts = append(c.toasts, e)
	t := c.toast(e, now)
	c.mu.Unlock()

	if c.activity != nil {
		c.activity.Log(user, `triggered a notification: "` + n.Title + `"`)
	}
	return t
}

// Dismiss starts the exit phase now, if it has not started already.
func (c *NotificationCenter) Dismiss(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for _, e := range c.toasts {
		if e.n.ID != id {
			continue
		}
		if now.Before(e.exitAt) {
			e.exitAt = now
		}
		return nil
	}
	return ErrNotFound
}

// Active drops removed toasts and returns the rest, oldest first.
func (c *NotificationCenter) Active() []model.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.toasts[:0]
	out := make([]model.Toast, 0, len(c.toasts))
	for _, e := range c.toasts {
		t := c.toast(e, now)
		if t.State == model.ToastRemoved {
			continue
		}
		kept = append(kept, e)
		out = append(out, t)
	}
	for i := len(kept); i < len(c.toasts); i++ {
		c.toasts[i] = nil
	}
	c.toasts = kept
	return out
}

func (c *NotificationCenter) Count() int { return len(c.Active()) }

func (c *NotificationCenter) toast(e *toastEntry, now time.Time) model.Toast {
	state := model.ToastVisible
	switch {
	case !now.Before(e.exitAt.Add(c.exit)):
		state = model.ToastRemoved
	case !now.Before(e.exitAt):
		state = model.ToastExiting
	}
	return model.Toast{Notification: e.n, CreatedAt: e.created, State: state}
}
