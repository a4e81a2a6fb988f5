package store

import (
	"context"
	"errors"
	"sort"

	"content-hub/internal/model"
)

var ErrNotFound = errors.New("post not found")

// PostStore indexes posts by date-key. Every day's list is kept ordered by
// time of day; posts are never updated or deleted.
type PostStore interface {
	Add(ctx context.Context, p model.Post) error
	Day(ctx context.Context, dateKey string) ([]model.Post, error)
	// Range returns every non-empty day with fromKey <= key <= toKey.
	Range(ctx context.Context, fromKey, toKey string) (map[string][]model.Post, error)
	Get(ctx context.Context, dateKey, id string) (model.Post, error)
}

// sortByTime is stable so equal times keep insertion order. HH:mm is zero
// padded, so string order is chronological.
func sortByTime(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Time < posts[j].Time })
}

// Seed is the sample content the dashboard starts with.
func Seed() []model.Post {
	return []model.Post{
		{
			ID: "1", Date: "2024-07-28", Content: "Initial post example!",
			Platform: model.Instagram, Time: "10:00", Client: model.ClientHS, Uploader: "System",
		},
		{
			ID: "2", Date: "2024-07-25", Content: "launch-creative.jpg",
			Platform: model.Facebook, Time: "14:30", Client: model.ClientDECA,
			File:     &model.FileRef{Name: "launch-creative.jpg", Type: "image/jpeg"},
			Uploader: "Alice",
		},
	}
}

// Populate adds posts in order, stopping at the first failure.
func Populate(ctx context.Context, s PostStore, posts []model.Post) error {
	for _, p := range posts {
		if err := s.Add(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
