package config

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	sdk "github.com/matrixorigin/moi-go-sdk"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Server        ServerConfig   `yaml:"server"`
	Log           LogConfig      `yaml:"log"`
	Auth          AuthConfig     `yaml:"auth"`
	Database      DatabaseConfig `yaml:"database"`
	MOI           MOIConfig      `yaml:"moi"`
	Toast         ToastConfig    `yaml:"toast"`
	Referral      ReferralConfig `yaml:"referral"`
	CelebrationMS int            `yaml:"celebration_ms"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

// Account is a login that must match its bcrypt hash. With no accounts
// configured any non-empty credential pair is accepted.
type Account struct {
	Email        string `yaml:"email"`
	Name         string `yaml:"name"`
	PasswordHash string `yaml:"password_hash"`
}

type AuthConfig struct {
	JWTSecret     string    `yaml:"jwt_secret"`
	TokenTTLHours int       `yaml:"token_ttl_hours"`
	Accounts      []Account `yaml:"accounts"`
}

type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type MOIConfig struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"api_key"`
	CatalogID       int64  `yaml:"catalog_id"`
	DatabaseID      int64  `yaml:"database_id"`
	PostsTableID    int64  `yaml:"posts_table_id"`
	ReferralTableID int64  `yaml:"referral_table_id"`
}

type ToastConfig struct {
	VisibleMS int `yaml:"visible_ms"`
	ExitMS    int `yaml:"exit_ms"`
}

type ReferralConfig struct {
	LinkBase string `yaml:"link_base"`
	Handle   string `yaml:"handle"`
}

func Default() *Config {
	return &Config{
		Server:        ServerConfig{Port: 9871},
		Log:           LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Auth:          AuthConfig{JWTSecret: "content-hub-secret-2026", TokenTTLHours: 7 * 24},
		Database:      DatabaseConfig{Port: 3306, Name: "content_hub"},
		Toast:         ToastConfig{VisibleMS: 5000, ExitMS: 400},
		Referral:      ReferralConfig{LinkBase: "https://dpsexpo.com/join/", Handle: "@dps_expo"},
		CelebrationMS: 3000,
	}
}

func Load(configFile string) *Config {
	c := Default()

	paths := []string{"etc/config-dev.yaml", "/etc/content-hub/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, c); err != nil {
				slog.Warn("config parse failed, using defaults", "path", path, "err", err)
				c = Default()
			}
			break
		}
	}

	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Auth.JWTSecret, "JWT_SECRET")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverride(&c.MOI.BaseURL, "MOI_BASE_URL")
	envOverride(&c.MOI.APIKey, "MOI_API_KEY")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")
	envOverrideBool(&c.Database.Enabled, "DB_ENABLED")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}

func (c *Config) ToastVisible() time.Duration {
	return time.Duration(c.Toast.VisibleMS) * time.Millisecond
}

func (c *Config) ToastExit() time.Duration {
	return time.Duration(c.Toast.ExitMS) * time.Millisecond
}

func (c *Config) Celebration() time.Duration {
	return time.Duration(c.CelebrationMS) * time.Millisecond
}

// MOIEnabled reports whether catalog sync has credentials to run with.
func (c *Config) MOIEnabled() bool {
	return c.MOI.BaseURL != "" && c.MOI.APIKey != ""
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	cfg := gomysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func (c *Config) NewRawClient() (*sdk.RawClient, error) {
	return sdk.NewRawClient(c.MOI.BaseURL, c.MOI.APIKey)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
