package store

import (
	"context"
	"sync"

	"content-hub/internal/model"
)

type MemoryStore struct {
	mu    sync.RWMutex
	posts map[string][]model.Post
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{posts: map[string][]model.Post{}}
}

// Add replaces the day's list with a new sorted slice, so slices handed out
// earlier are never mutated underneath their readers.
func (s *MemoryStore) Add(_ context.Context, p model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.posts[p.Date]
	next := make([]model.Post, 0, len(existing)+1)
	next = append(next, existing...)
	next = append(next, p)
	sortByTime(next)
	s.posts[p.Date] = next
	return nil
}

func (s *MemoryStore) Day(_ context.Context, dateKey string) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Post(nil), s.posts[dateKey]...), nil
}

func (s *MemoryStore) Range(_ context.Context, fromKey, toKey string) (map[string][]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string][]model.Post{}
	for key, posts := range s.posts {
		if key >= fromKey && key <= toKey && len(posts) > 0 {
			out[key] = append([]model.Post(nil), posts...)
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, dateKey, id string) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts[dateKey] {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, ErrNotFound
}
