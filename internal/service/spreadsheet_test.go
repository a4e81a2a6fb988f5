package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestExportWorkbook(t *testing.T) {
	posts, _, _ := newPostService(t)
	s := NewSpreadsheetService(posts)

	var buf bytes.Buffer
	require.NoError(t, s.Export(context.Background(), time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Calendar", "Posts"}, f.GetSheetList())
	title, err := f.GetCellValue("Calendar", "A1")
	require.NoError(t, err)
	assert.Equal(t, "July 2024", title)
	sun, _ := f.GetCellValue("Calendar", "A2")
	assert.Equal(t, "SUN", sun)

	rows, err := f.GetRows("Posts")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-07-25", rows[1][0])
	assert.Equal(t, "launch-creative.jpg", rows[1][5])
	assert.Equal(t, "2024-07-28", rows[2][0])
}

func TestImportPreviewConfirm(t *testing.T) {
	ctx := context.Background()
	posts, _, _ := newPostService(t)
	s := NewSpreadsheetService(posts)

	buf := workbook(t, [][]any{
		{"Date", "Time", "Platform", "Client", "Content", "File"},
		{"2024-07-28", "08:15", "LinkedIn", "DPS", "Expo countdown", ""},
		{"2024/07/29", "", "", "DECA", "", "teaser.mp4"},
		{" "},
		{"2024-07-30", "10:00", "Instagram", "", "No client", ""},
	})

	preview, err := s.Preview(buf)
	require.NoError(t, err)
	require.Len(t, preview.Rows, 3)
	assert.Equal(t, 2, preview.Valid)
	assert.Equal(t, "2024-07-29", preview.Rows[1].Draft.Date)
	assert.Equal(t, "teaser.mp4", preview.Rows[1].Draft.Content)
	assert.Equal(t, ErrNoClient.Error(), preview.Rows[2].Error)
	assert.Equal(t, 5, preview.Rows[2].Row)

	res, err := s.Confirm(ctx, preview.Token, riaz)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 2, Skipped: 1, Total: 3}, res)

	day, err := posts.Day(ctx, "2024-07-28")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "Expo countdown", day[0].Content)

	_, err = s.Confirm(ctx, preview.Token, riaz)
	assert.ErrorIs(t, err, ErrPreviewExpired)
}

func TestImportPreviewExpires(t *testing.T) {
	posts, _, _ := newPostService(t)
	s := NewSpreadsheetService(posts)
	clock := &fakeClock{t: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	s.now = clock.now

	preview, err := s.Preview(workbook(t, [][]any{{"Date"}, {"2024-07-28", "09:00", "Twitter", "H&S", "x"}}))
	require.NoError(t, err)

	clock.advance(11 * time.Minute)
	s.sweep()
	_, err = s.Confirm(context.Background(), preview.Token, riaz)
	assert.ErrorIs(t, err, ErrPreviewExpired)
}
