package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-hub/internal/calendar"
	"content-hub/internal/config"
	"content-hub/internal/handler"
	"content-hub/internal/logger"
	"content-hub/internal/middleware"
	"content-hub/internal/service"
	"content-hub/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logs := logger.Init(cfg.Log)
	defer logs.Close()
	middleware.JWTSecret = []byte(cfg.Auth.JWTSecret)
	middleware.TokenTTL = cfg.TokenTTL()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("store init failed", "err", err)
		os.Exit(1)
	}

	var catalogSync *service.CatalogSync
	if cfg.MOIEnabled() {
		raw, err := cfg.NewRawClient()
		if err != nil {
			slog.Warn("sdk client init failed", "err", err)
		} else {
			catalogSync = service.NewCatalogSync(raw, cfg.MOI)
			slog.Info("catalog sync enabled", "database_id", cfg.MOI.DatabaseID)
		}
	}

	activity := service.NewActivityService()
	workspace := service.NewWorkspaceService()
	posts := service.NewPostService(st, calendar.DefaultSpecialDays(), workspace, activity, catalogSync, cfg.Celebration())
	sheets := service.NewSpreadsheetService(posts)
	go sheets.Janitor(ctx, 5*time.Minute)
	referral := service.NewReferralService(catalogSync)

	r := handler.NewRouter(handler.Services{
		Auth:          service.NewAuthService(cfg.Auth.Accounts, activity),
		Posts:         posts,
		Sheets:        sheets,
		Uploads:       service.NewUploadService(posts),
		Notifications: service.NewNotificationCenter(cfg.ToastVisible(), cfg.ToastExit(), activity),
		Activity:      activity,
		Chat:          service.NewChatService(activity),
		Workspace:     workspace,
		Referral:      referral,
		ShareKit:      service.NewShareKitService(referral, cfg.Referral.LinkBase, cfg.Referral.Handle),
	})
	if dir := cfg.Server.StaticDir; dir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
	}

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	slog.Info("server starting", "addr", cfg.Addr(), "db", cfg.Database.Enabled, "catalog", catalogSync != nil)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore picks MySQL when enabled, seeding an empty table once, and the
// in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.PostStore, error) {
	if !cfg.Database.Enabled {
		mem := store.NewMemoryStore()
		return mem, store.Populate(ctx, mem, store.Seed())
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		return nil, err
	}
	gs, err := store.NewGormStore(db)
	if err != nil {
		return nil, err
	}
	empty, err := gs.Empty(ctx)
	if err != nil {
		return nil, err
	}
	if empty {
		if err := store.Populate(ctx, gs, store.Seed()); err != nil {
			return nil, err
		}
		slog.Info("store seeded")
	}
	return gs, nil
}
