// Command catalog_init creates the reporting database, tables and NL2SQL
// knowledge the server's catalog sync writes to.
package main

import (
	"context"
	"flag"
	"log"

	"content-hub/internal/config"
	"content-hub/internal/logger"

	sdk "github.com/matrixorigin/moi-go-sdk"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	skipKnowledge := flag.Bool("skip-knowledge", false, "only create database and tables")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	if !cfg.MOIEnabled() {
		log.Fatal("moi.base_url and moi.api_key are required")
	}
	client, err := cfg.NewRawClient()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()
	catalogID := sdk.CatalogID(cfg.MOI.CatalogID)
	if catalogID == 0 {
		catalogID = 1
	}

	dbID, err := initCatalog(ctx, client, catalogID, cfg.Database.Name)
	if err != nil {
		log.Fatal("catalog init failed:", err)
	}
	logger.Info("catalog ready", "database_id", dbID)

	if !*skipKnowledge {
		if err := initKnowledge(ctx, client); err != nil {
			log.Fatal("knowledge init failed:", err)
		}
	}

	logger.Info("=== all done ===")
}
