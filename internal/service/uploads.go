package service

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"mime"
	"path/filepath"
	"strings"

	"content-hub/internal/model"

	"github.com/gabriel-vasile/mimetype"
)

const placeholderSize = 200

type UploadService struct {
	posts *PostService
}

func NewUploadService(posts *PostService) *UploadService {
	return &UploadService{posts: posts}
}

// ForDay lists the day's posts that carry an attachment.
func (s *UploadService) ForDay(ctx context.Context, dateKey string) ([]model.Post, error) {
	day, err := s.posts.Day(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	out := []model.Post{}
	for _, p := range day {
		if p.HasFile() {
			out = append(out, p)
		}
	}
	return out, nil
}

type Download struct {
	Name        string
	ContentType string
	Data        []byte
}

// Download serves a generated placeholder image in place of the
// attachment, whose bytes were never kept.
func (s *UploadService) Download(ctx context.Context, dateKey, id string) (Download, error) {
	p, err := s.posts.Get(ctx, dateKey, id)
	if err != nil {
		return Download{}, err
	}
	if !p.HasFile() {
		return Download{}, ErrNotFound
	}
	data, err := placeholderPNG(p.ID)
	if err != nil {
		return Download{}, fmt.Errorf("render placeholder: %w", err)
	}
	name := strings.TrimSuffix(p.File.Name, filepath.Ext(p.File.Name)) + ".png"
	return Download{Name: name, ContentType: "image/png", Data: data}, nil
}

// placeholderPNG paints a flat tile whose colour is derived from seed.
func placeholderPNG(seed string) ([]byte, error) {
	h := fnv.New32a()
	h.Write([]byte(seed))
	sum := h.Sum32()
	fill := color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Inspect builds the attachment descriptor for an uploaded file from its
// leading bytes, falling back to the extension when the content is empty.
func (s *UploadService) Inspect(name string, head []byte) model.FileRef {
	ref := model.FileRef{Name: filepath.Base(name)}
	if len(head) > 0 {
		ref.Type = mimetype.Detect(head).String()
		return ref
	}
	ref.Type = mime.TypeByExtension(filepath.Ext(name))
	if ref.Type == "" {
		ref.Type = "application/octet-stream"
	}
	return ref
}
