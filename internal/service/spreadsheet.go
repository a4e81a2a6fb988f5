package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"content-hub/internal/calendar"
	"content-hub/internal/logger"
	"content-hub/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	calendarSheet = "Calendar"
	postsSheet    = "Posts"
	previewTTL    = 10 * time.Minute
)

var postsHeader = []string{"Date", "Time", "Platform", "Client", "Content", "File", "Uploader"}

// Date layouts accepted in import sheets, ISO first.
var importDateLayouts = []string{calendar.DateLayout, "2006/01/02", "01-02-06", "1/2/06", "1/2/2006", "02/01/2006"}

type ImportRow struct {
	Row   int             `json:"row"`
	Draft model.PostDraft `json:"draft"`
	Error string          `json:"error,omitempty"`
}

type ImportPreview struct {
	Token string      `json:"token"`
	Rows  []ImportRow `json:"rows"`
	Valid int         `json:"valid"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

type previewCache struct {
	rows      []ImportRow
	createdAt time.Time
}

// SpreadsheetService moves the schedule in and out of .xlsx workbooks.
// Imports are two-step: Preview parses and validates, Confirm saves.
type SpreadsheetService struct {
	posts *PostService
	cache sync.Map // token -> *previewCache
	now   func() time.Time
}

func NewSpreadsheetService(posts *PostService) *SpreadsheetService {
	return &SpreadsheetService{posts: posts, now: time.Now}
}

// Janitor drops expired previews until ctx ends.
func (s *SpreadsheetService) Janitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep()
		}
	}
}

func (s *SpreadsheetService) sweep() {
	now := s.now()
	s.cache.Range(func(k, v any) bool {
		if now.Sub(v.(*previewCache).createdAt) > previewTTL {
			s.cache.Delete(k)
		}
		return true
	})
}

// Export writes the month of ref as a calendar sheet plus a flat posts sheet.
func (s *SpreadsheetService) Export(ctx context.Context, ref time.Time, w io.Writer) error {
	grid, err := s.posts.Month(ctx, ref)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", calendarSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return fmt.Errorf("new style: %w", err)
	}

	title := fmt.Sprintf("%s %d", grid.Title, grid.Year)
	if err := f.SetCellValue(calendarSheet, "A1", title); err != nil {
		return err
	}
	for i, label := range grid.WeekdayLabels {
		if err := setCell(f, calendarSheet, i+1, 2, label); err != nil {
			return err
		}
	}
	for r, week := range grid.Weeks {
		for c, cell := range week {
			if err := setCell(f, calendarSheet, c+1, r+3, cellText(cell)); err != nil {
				return err
			}
		}
	}
	last, _ := excelize.CoordinatesToCellName(7, len(grid.Weeks)+2)
	if err := f.SetCellStyle(calendarSheet, "A3", last, wrap); err != nil {
		return err
	}
	if err := f.SetColWidth(calendarSheet, "A", "G", 28); err != nil {
		return err
	}

	if _, err := f.NewSheet(postsSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	for i, h := range postsHeader {
		if err := setCell(f, postsSheet, i+1, 1, h); err != nil {
			return err
		}
	}
	row := 2
	for _, cell := range grid.Cells() {
		for _, p := range cell.Posts {
			fileName := ""
			if p.File != nil {
				fileName = p.File.Name
			}
			vals := []string{p.Date, p.Time, string(p.Platform), string(p.Client), p.Content, fileName, p.Uploader}
			for i, v := range vals {
				if err := setCell(f, postsSheet, i+1, row, v); err != nil {
					return err
				}
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	logger.Info("export.done", "month", calendar.DateKey(calendar.MonthStart(ref)), "posts", row-2)
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, name, v)
}

func cellText(c calendar.DayCell) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", c.Day)
	if c.SpecialDay != nil {
		sb.WriteString("\n★ " + c.SpecialDay.Name)
	}
	for _, p := range c.Posts {
		fmt.Fprintf(&sb, "\n%s %s %s: %s", p.Time, p.Platform, p.Client, p.Content)
		if p.File != nil {
			sb.WriteString(" 📎")
		}
	}
	return sb.String()
}

// Preview parses the Posts sheet (or the first sheet) of an uploaded
// workbook. Row 1 is the header; columns follow postsHeader minus Uploader.
func (s *SpreadsheetService) Preview(r io.Reader) (ImportPreview, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportPreview{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := postsSheet
	if idx, _ := f.GetSheetIndex(postsSheet); idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return ImportPreview{}, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return ImportPreview{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	preview := ImportPreview{Rows: []ImportRow{}}
	for i, cols := range rows {
		if i == 0 || blank(cols) {
			continue
		}
		ir := ImportRow{Row: i + 1, Draft: rowDraft(cols)}
		if d, err := Normalize(ir.Draft); err != nil {
			ir.Error = err.Error()
		} else {
			ir.Draft = d
			preview.Valid++
		}
		preview.Rows = append(preview.Rows, ir)
	}

	preview.Token = genToken()
	s.cache.Store(preview.Token, &previewCache{rows: preview.Rows, createdAt: s.now()})
	logger.Info("import.preview", "token", preview.Token, "rows", len(preview.Rows), "valid", preview.Valid)
	return preview, nil
}

// Confirm schedules every valid row of a cached preview as u.
func (s *SpreadsheetService) Confirm(ctx context.Context, token string, u model.User) (ImportResult, error) {
	val, ok := s.cache.LoadAndDelete(token)
	if !ok {
		return ImportResult{}, ErrPreviewExpired
	}
	cached := val.(*previewCache)
	if s.now().Sub(cached.createdAt) > previewTTL {
		return ImportResult{}, ErrPreviewExpired
	}

	res := ImportResult{Total: len(cached.rows)}
	for _, r := range cached.rows {
		if r.Error != "" {
			res.Skipped++
			continue
		}
		if _, err := s.posts.Schedule(ctx, u, r.Draft); err != nil {
			logger.Warn("import.row_failed", "row", r.Row, "err", err)
			res.Skipped++
			continue
		}
		res.Imported++
	}
	logger.Info("import.confirm", "token", token, "imported", res.Imported, "skipped", res.Skipped)
	return res, nil
}

func rowDraft(cols []string) model.PostDraft {
	get := func(i int) string {
		if i < len(cols) {
			return strings.TrimSpace(cols[i])
		}
		return ""
	}
	d := model.PostDraft{
		Date:     importDate(get(0)),
		Time:     get(1),
		Platform: model.Platform(get(2)),
		Client:   model.Client(get(3)),
		Content:  get(4),
	}
	if name := get(5); name != "" {
		d.File = &model.FileRef{Name: name}
	}
	return d
}

func importDate(s string) string {
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(calendar.DateLayout)
		}
	}
	return s
}

func blank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func genToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
