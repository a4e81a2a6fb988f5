package main

import (
	"context"
	"fmt"
	"strings"

	"content-hub/internal/logger"

	sdk "github.com/matrixorigin/moi-go-sdk"
)

type catalogTable struct {
	name    string
	comment string
	columns []sdk.Column
}

// Column order matches the CSV rows the server appends.
var catalogTables = []catalogTable{
	{"scheduled_posts", "posts scheduled from the content calendar", []sdk.Column{
		{Name: "post_id", Type: "VARCHAR(64)", IsPk: true, Comment: "post id"},
		{Name: "date_key", Type: "DATE", Comment: "day the post is scheduled for"},
		{Name: "time_of_day", Type: "VARCHAR(5)", Comment: "HH:mm publish time"},
		{Name: "platform", Type: "VARCHAR(20)", Comment: "Instagram, Twitter, Facebook or LinkedIn"},
		{Name: "client", Type: "VARCHAR(20)", Comment: "client brand: H&S, DECA or DPS"},
		{Name: "content", Type: "TEXT", Comment: "post text"},
		{Name: "file_name", Type: "VARCHAR(255)", Comment: "attachment file name, empty when none"},
		{Name: "file_type", Type: "VARCHAR(100)", Comment: "attachment MIME type"},
		{Name: "uploader", Type: "VARCHAR(100)", Comment: "name of the team member who scheduled it"},
		{Name: "synced_at", Type: "DATETIME", Comment: "time the row was exported"},
	}},
	{"referral_clicks", "ambassador referral link visits", []sdk.Column{
		{Name: "record_id", Type: "VARCHAR(64)", IsPk: true, Comment: "click id"},
		{Name: "employee_code", Type: "VARCHAR(32)", Comment: "ambassador referral code, e.g. DPS-AHMED-01"},
		{Name: "source", Type: "VARCHAR(20)", Comment: "whatsapp, email, linkedin, qr or direct"},
		{Name: "follower_estimate", Type: "TINYINT", Comment: "1 when the visit is counted as a new follower"},
		{Name: "clicked_at", Type: "DATETIME", Comment: "visit time"},
	}},
}

func initCatalog(ctx context.Context, client *sdk.RawClient, catalogID sdk.CatalogID, dbName string) (sdk.DatabaseID, error) {
	dbID, err := ensureDatabase(ctx, client, catalogID, dbName)
	if err != nil {
		return 0, err
	}

	for _, t := range catalogTables {
		resp, err := client.CreateTable(ctx, &sdk.TableCreateRequest{
			DatabaseID: dbID,
			Name:       t.name,
			Columns:    t.columns,
			Comment:    t.comment,
		})
		if err != nil {
			if isDuplicate(err) {
				logger.Info("catalog: table already exists, skipping", "name", t.name)
				continue
			}
			return 0, fmt.Errorf("create table %s: %w", t.name, err)
		}
		// set moi.posts_table_id / moi.referral_table_id from these
		logger.Info("catalog: table created", "name", t.name, "id", resp.TableID)
	}
	return dbID, nil
}

func ensureDatabase(ctx context.Context, client *sdk.RawClient, catalogID sdk.CatalogID, dbName string) (sdk.DatabaseID, error) {
	dbResp, err := client.CreateDatabase(ctx, &sdk.DatabaseCreateRequest{
		CatalogID:    catalogID,
		DatabaseName: dbName,
		Comment:      "content calendar and referral program",
	})
	if err == nil {
		logger.Info("catalog: database created", "id", dbResp.DatabaseID)
		return dbResp.DatabaseID, nil
	}
	if !isDuplicate(err) {
		return 0, fmt.Errorf("create database: %w", err)
	}

	logger.Info("catalog: database already exists, discovering ID", "name", dbName)
	resp, err := client.ListDatabases(ctx, &sdk.DatabaseListRequest{CatalogID: catalogID})
	if err != nil {
		return 0, fmt.Errorf("list databases: %w", err)
	}
	for _, db := range resp.List {
		if db.DatabaseName == dbName {
			logger.Info("catalog: database discovered", "id", db.DatabaseID)
			return db.DatabaseID, nil
		}
	}
	return 0, fmt.Errorf("database %s not found in catalog %d", dbName, catalogID)
}

func isDuplicate(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate") || strings.Contains(s, "already exist") || strings.Contains(s, "conflict")
}
