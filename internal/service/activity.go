package service

import (
	"sync"
	"time"

	"content-hub/internal/model"
)

type ActivityService struct {
	mu      sync.RWMutex
	entries []model.ActivityLog
	now     func() time.Time
}

func NewActivityService() *ActivityService {
	return &ActivityService{now: time.Now}
}

// Log prepends an entry; an empty user is recorded as System.
func (s *ActivityService) Log(user, action string) model.ActivityLog {
	if user == "" {
		user = "System"
	}
	entry := model.ActivityLog{ID: newID(), Timestamp: s.now(), User: user, Action: action}

	s.mu.Lock()
	s.entries = append([]model.ActivityLog{entry}, s.entries...)
	s.mu.Unlock()
	return entry
}

// List is newest first.
func (s *ActivityService) List() []model.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ActivityLog(nil), s.entries...)
}
