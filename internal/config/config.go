package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"wildcats_backend/internal/model"
)

// Config holds everything the process reads from the environment. It is
// built once in main and passed to constructors; nothing mutates it after
// Load returns.
type Config struct {
	Port            string
	DataDir         string
	UploadsDir      string
	JWTSecret       string
	JWTExpiryHours  int64
	AdminAccounts   []model.AdminAccount
	AllowedOrigins  []string
	Env             string
	SMTP            SMTPConfig
}

// SMTPConfig configures the best-effort notification mailer. Mail is
// disabled when Host is empty.
type SMTPConfig struct {
	Host        string
	Port        string
	Username    string
	Password    string
	NotifyEmail string
}

// Production reports whether stack traces should be withheld from 500 bodies.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load builds a Config from the environment. The JWT secret is required:
// the original implementation generated an ephemeral one and silently
// invalidated every session on restart, so startup now fails instead.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set; refusing to start with an ephemeral signing secret")
	}

	expiry := int64(24)
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q", v)
		}
		expiry = parsed
	}

	cfg := &Config{
		Port:           envOr("PORT", "3000"),
		DataDir:        envOr("DATA_DIR", "data"),
		UploadsDir:     envOr("UPLOADS_DIR", "uploads"),
		JWTSecret:      secret,
		JWTExpiryHours: expiry,
		AdminAccounts:  loadAdminAccounts(),
		AllowedOrigins: splitCSV(envOr("ALLOWED_ORIGINS", "http://localhost:3000,https://lazardeus.github.io")),
		Env:            envOr("APP_ENV", "development"),
		SMTP: SMTPConfig{
			Host:        os.Getenv("SMTP_HOST"),
			Port:        envOr("SMTP_PORT", "587"),
			Username:    os.Getenv("SMTP_USER"),
			Password:    os.Getenv("SMTP_PASS"),
			NotifyEmail: os.Getenv("NOTIFY_EMAIL"),
		},
	}
	return cfg, nil
}

// loadAdminAccounts reads the owner and admin accounts plus any number of
// additional admins from ADDITIONAL_ADMINS ("user:pass,user:pass").
// Malformed pairs are skipped; the caller logs how many accounts loaded.
func loadAdminAccounts() []model.AdminAccount {
	accounts := []model.AdminAccount{
		{
			Username: envOr("OWNER_USERNAME", "owner"),
			Password: envOr("OWNER_PASSWORD", "yukon2025owner"),
			Role:     model.RoleOwner,
		},
		{
			Username: envOr("ADMIN_USERNAME", "admin"),
			Password: envOr("ADMIN_PASSWORD", "wildcats2025"),
			Role:     model.RoleAdmin,
		},
	}

	for _, pair := range splitCSV(os.Getenv("ADDITIONAL_ADMINS")) {
		username, password, ok := strings.Cut(pair, ":")
		if !ok || username == "" || password == "" {
			continue
		}
		accounts = append(accounts, model.AdminAccount{
			Username: username,
			Password: password,
			Role:     model.RoleAdmin,
		})
	}
	return accounts
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
