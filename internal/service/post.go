package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"content-hub/internal/calendar"
	"content-hub/internal/model"
	"content-hub/internal/store"
)

const defaultPostTime = "10:00"

var hhmm = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type PostService struct {
	store       store.PostStore
	days        *calendar.SpecialDays
	workspace   *WorkspaceService
	activity    *ActivityService
	catalog     *CatalogSync
	celebration time.Duration
	now         func() time.Time
}

func NewPostService(st store.PostStore, days *calendar.SpecialDays, ws *WorkspaceService,
	activity *ActivityService, catalog *CatalogSync, celebration time.Duration) *PostService {
	return &PostService{
		store: st, days: days, workspace: ws, activity: activity,
		catalog: catalog, celebration: celebration, now: time.Now,
	}
}

func (s *PostService) SpecialDays() *calendar.SpecialDays { return s.days }

// Normalize validates a draft the way the composer does and fills defaults.
func Normalize(d model.PostDraft) (model.PostDraft, error) {
	d.Content = strings.TrimSpace(d.Content)
	if d.File != nil && strings.TrimSpace(d.File.Name) == "" {
		d.File = nil
	}
	if d.Content == "" && d.File == nil {
		return d, ErrEmptyPost
	}
	if d.Content == "" {
		d.Content = d.File.Name
	}
	if d.Client == "" || !d.Client.Valid() {
		return d, ErrNoClient
	}
	if d.Platform == "" {
		d.Platform = model.Instagram
	}
	if !d.Platform.Valid() {
		return d, ErrBadPlatform
	}
	if d.Time == "" {
		d.Time = defaultPostTime
	}
	if !hhmm.MatchString(d.Time) {
		return d, ErrBadTime
	}
	if _, err := calendar.ParseDateKey(d.Date); err != nil {
		return d, ErrBadDate
	}
	return d, nil
}

// Schedule stores a new post for u and runs the after-save effects.
func (s *PostService) Schedule(ctx context.Context, u model.User, draft model.PostDraft) (model.Post, error) {
	d, err := Normalize(draft)
	if err != nil {
		return model.Post{}, err
	}

	uploader := u.Name
	if uploader == "" {
		uploader = "Unknown"
	}
	p := model.Post{
		ID:       newID(),
		Date:     d.Date,
		Content:  d.Content,
		Platform: d.Platform,
		Client:   d.Client,
		Time:     d.Time,
		File:     d.File,
		Uploader: uploader,
	}
	if err := s.store.Add(ctx, p); err != nil {
		return model.Post{}, fmt.Errorf("save post: %w", err)
	}

	if s.activity != nil {
		s.activity.Log(u.Name, fmt.Sprintf("scheduled a post for %s on %s for client %s", p.Platform, p.Date, p.Client))
	}
	if s.workspace != nil && u.ID != "" {
		s.workspace.Update(u.ID, func(w *Workspace) { w.CloseComposer() })
		s.workspace.Celebrate(u, s.celebration)
	}
	if s.catalog != nil {
		s.catalog.SyncPost(ctx, p)
	}
	return p, nil
}

func (s *PostService) Day(ctx context.Context, dateKey string) ([]model.Post, error) {
	if _, err := calendar.ParseDateKey(dateKey); err != nil {
		return nil, ErrBadDate
	}
	return s.store.Day(ctx, dateKey)
}

func (s *PostService) Get(ctx context.Context, dateKey, id string) (model.Post, error) {
	p, err := s.store.Get(ctx, dateKey, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Post{}, ErrNotFound
	}
	return p, err
}

// Displayed returns the posts of every day shown in ref's month view.
func (s *PostService) Displayed(ctx context.Context, ref time.Time) (map[string][]model.Post, error) {
	first, last := calendar.DisplayRange(ref)
	return s.store.Range(ctx, calendar.DateKey(first), calendar.DateKey(last))
}

func (s *PostService) Month(ctx context.Context, ref time.Time) (calendar.MonthGrid, error) {
	posts, err := s.Displayed(ctx, ref)
	if err != nil {
		return calendar.MonthGrid{}, fmt.Errorf("load month posts: %w", err)
	}
	return calendar.BuildMonth(ref, s.now(), posts, s.days), nil
}
