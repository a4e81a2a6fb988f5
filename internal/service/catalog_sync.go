package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"content-hub/internal/config"
	"content-hub/internal/model"

	sdk "github.com/matrixorigin/moi-go-sdk"
)

// CatalogSync appends scheduled posts and referral clicks to MatrixOne
// catalog tables for reporting. Every call is best effort and asynchronous.
type CatalogSync struct {
	raw             *sdk.RawClient
	sdk             *sdk.SDKClient
	databaseID      sdk.DatabaseID
	postsTableID    sdk.TableID
	referralTableID sdk.TableID
}

func NewCatalogSync(raw *sdk.RawClient, cfg config.MOIConfig) *CatalogSync {
	return &CatalogSync{
		raw:             raw,
		sdk:             sdk.NewSDKClient(raw),
		databaseID:      sdk.DatabaseID(cfg.DatabaseID),
		postsTableID:    sdk.TableID(cfg.PostsTableID),
		referralTableID: sdk.TableID(cfg.ReferralTableID),
	}
}

// scheduled_posts: post_id, date_key, time_of_day, platform, client, content, file_name, file_type, uploader, synced_at
func postCSV(p model.Post, now time.Time) string {
	var fileName, fileType string
	if p.File != nil {
		fileName, fileType = p.File.Name, p.File.Type
	}
	return fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
		esc(p.ID), p.Date, p.Time, esc(string(p.Platform)), esc(string(p.Client)),
		esc(p.Content), esc(fileName), esc(fileType), esc(p.Uploader), now.Format("2006-01-02 15:04:05"))
}

// referral_clicks: record_id, employee_code, source, follower_estimate, clicked_at
func referralCSV(r model.ReferralRecord) string {
	follower := 0
	if r.FollowerEstimate {
		follower = 1
	}
	return fmt.Sprintf("%s,%s,%s,%d,%s\n",
		esc(r.ID), esc(r.EmployeeCode), esc(string(r.Source)), follower, r.Timestamp.Format("2006-01-02 15:04:05"))
}

var postColumns = []string{"post_id", "date_key", "time_of_day", "platform", "client", "content", "file_name", "file_type", "uploader", "synced_at"}

var referralColumns = []string{"record_id", "employee_code", "source", "follower_estimate", "clicked_at"}

func columnMapping(cols []string) []sdk.FileAndTableColumnMapping {
	out := make([]sdk.FileAndTableColumnMapping, len(cols))
	for i, c := range cols {
		out[i] = sdk.FileAndTableColumnMapping{TableColumn: c, Column: c, ColNumInFile: i + 1}
	}
	return out
}

func (s *CatalogSync) SyncPost(ctx context.Context, p model.Post) {
	if s.postsTableID == 0 {
		return
	}
	csv := postCSV(p, time.Now())
	go s.importCSV(context.WithoutCancel(ctx), s.postsTableID, csv, fmt.Sprintf("post_%s.csv", p.ID), columnMapping(postColumns))
}

func (s *CatalogSync) SyncReferralClick(ctx context.Context, r model.ReferralRecord) {
	if s.referralTableID == 0 {
		return
	}
	csv := referralCSV(r)
	go s.importCSV(context.WithoutCancel(ctx), s.referralTableID, csv, fmt.Sprintf("%s.csv", r.ID), columnMapping(referralColumns))
}

func (s *CatalogSync) importCSV(ctx context.Context, tableID sdk.TableID, csv, fileName string, mapping []sdk.FileAndTableColumnMapping) {
	resp, err := s.raw.UploadLocalFile(ctx, bytes.NewReader([]byte(csv)), fileName, []sdk.FileMeta{{Filename: fileName, Path: "/"}})
	if err != nil {
		slog.Warn("catalog sync: upload failed", "table", tableID, "err", err)
		return
	}
	if len(resp.ConnFileIds) == 0 {
		slog.Warn("catalog sync: no conn_file_ids", "table", tableID)
		return
	}

	_, err = s.sdk.ImportLocalFileToTable(ctx, &sdk.TableConfig{
		ConnFileIDs:      resp.ConnFileIds,
		NewTable:         false,
		DatabaseID:       s.databaseID,
		TableID:          tableID,
		IsColumnName:     false,
		RowStart:         1,
		Conflict:         1,
		ExistedTable:     mapping,
		ExistedTableOpts: sdk.ExistedTableOptions{Method: sdk.ExistedTableOptionAppend},
	})
	if err != nil {
		slog.Warn("catalog sync: import failed", "table", tableID, "file", fileName, "err", err)
		return
	}
	slog.Info("catalog sync: ok", "table", tableID, "file", fileName)
}

func esc(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
