package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"content-hub/internal/model"

	"gorm.io/gorm"
)

// postRow is the scheduled_posts table. Seq keeps insertion order among
// posts sharing a time slot. PostID is not unique: like the memory store,
// a repeated id is stored as another post.
type postRow struct {
	Seq       int64  `gorm:"primaryKey;autoIncrement"`
	PostID    string `gorm:"size:64;index"`
	DateKey   string `gorm:"size:10;index:idx_date_time"`
	TimeOfDay string `gorm:"size:5;index:idx_date_time"`
	Content   string `gorm:"type:text"`
	Platform  string `gorm:"size:20"`
	Client    string `gorm:"size:20"`
	FileName  string `gorm:"size:255"`
	FileType  string `gorm:"size:100"`
	Uploader  string `gorm:"size:100"`
	CreatedAt time.Time
}

func (postRow) TableName() string { return "scheduled_posts" }

func toRow(p model.Post) postRow {
	r := postRow{
		PostID: p.ID, DateKey: p.Date, TimeOfDay: p.Time, Content: p.Content,
		Platform: string(p.Platform), Client: string(p.Client), Uploader: p.Uploader,
	}
	if p.File != nil {
		r.FileName, r.FileType = p.File.Name, p.File.Type
	}
	return r
}

func (r postRow) toPost() model.Post {
	p := model.Post{
		ID: r.PostID, Date: r.DateKey, Time: r.TimeOfDay, Content: r.Content,
		Platform: model.Platform(r.Platform), Client: model.Client(r.Client), Uploader: r.Uploader,
	}
	if r.FileName != "" {
		p.File = &model.FileRef{Name: r.FileName, Type: r.FileType}
	}
	return p
}

type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&postRow{}); err != nil {
		return nil, fmt.Errorf("migrate scheduled_posts: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Add(ctx context.Context, p model.Post) error {
	row := toRow(p)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (s *GormStore) Day(ctx context.Context, dateKey string) ([]model.Post, error) {
	var rows []postRow
	err := s.db.WithContext(ctx).
		Where("date_key = ?", dateKey).
		Order("time_of_day, seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query day %s: %w", dateKey, err)
	}
	out := make([]model.Post, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toPost())
	}
	return out, nil
}

func (s *GormStore) Range(ctx context.Context, fromKey, toKey string) (map[string][]model.Post, error) {
	var rows []postRow
	err := s.db.WithContext(ctx).
		Where("date_key BETWEEN ? AND ?", fromKey, toKey).
		Order("date_key, time_of_day, seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query range %s..%s: %w", fromKey, toKey, err)
	}
	out := map[string][]model.Post{}
	for _, r := range rows {
		out[r.DateKey] = append(out[r.DateKey], r.toPost())
	}
	return out, nil
}

func (s *GormStore) Get(ctx context.Context, dateKey, id string) (model.Post, error) {
	var row postRow
	err := s.db.WithContext(ctx).Where("date_key = ? AND post_id = ?", dateKey, id).
		Order("time_of_day, seq").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Post{}, ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("query post %s: %w", id, err)
	}
	return row.toPost(), nil
}

// Empty reports whether the table has no rows yet, so seeding runs once.
func (s *GormStore) Empty(ctx context.Context) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&postRow{}).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count posts: %w", err)
	}
	return n == 0, nil
}
