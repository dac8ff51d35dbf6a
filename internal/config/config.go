package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mind-engage/gradescale/internal/grading"
)

// DevSecret is the built-in signing key. It only suits local runs of the
// CLI; the daemon refuses to start with it.
const DevSecret = "gradescale-dev-secret"

type Config struct {
	HTTPAddr string

	DefaultScale grading.Kind
	MaxPoints    float64
	ExportPath   string // relative export/roster keys resolve here

	DBDriver string // sqlite|postgres|pq|none
	DBDSN    string

	EnableLocalAuth bool
	EnableGuestView bool // read-only tokens without credentials

	AdminUser     string
	AdminPassHash string // bcrypt; empty disables admin login
	AuthSecret    string

	CORSOrigins []string
}

// fileConfig mirrors config.toml; nil fields keep the default.
type fileConfig struct {
	HTTPAddr        *string       `toml:"http_addr"`
	DefaultScale    *grading.Kind `toml:"default_scale"`
	MaxPoints       *float64      `toml:"max_points"`
	ExportPath      *string       `toml:"export_path"`
	DBDriver        *string       `toml:"db_driver"`
	DBDSN           *string       `toml:"db_dsn"`
	EnableLocalAuth *bool         `toml:"enable_local_auth"`
	EnableGuestView *bool         `toml:"enable_guest_view"`
	AdminUser       *string       `toml:"admin_user"`
	AdminPassHash   *string       `toml:"admin_pass_hash"`
	AuthSecret      *string       `toml:"auth_secret"`
	CORSOrigins     []string      `toml:"cors_origins"`
}

func Defaults() Config {
	return Config{
		HTTPAddr:        ":8080",
		DefaultScale:    grading.KindIHK,
		MaxPoints:       100,
		ExportPath:      defaultExportPath(),
		DBDriver:        "sqlite",
		EnableLocalAuth: true,
		EnableGuestView: true,
		AdminUser:       "admin",
		AuthSecret:      DevSecret,
		CORSOrigins:     []string{"http://localhost:3000"},
	}
}

// Load reads the optional TOML file named by GRADESCALE_CONFIG (or the
// default location) and then applies environment overrides.
func Load() (Config, error) {
	cfg := Defaults()
	path := os.Getenv("GRADESCALE_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		err := cfg.mergeFile(path)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return cfg, err
		}
	}
	cfg.mergeEnv()
	return cfg, cfg.Validate()
}

// DefaultPath is <user config dir>/gradescale/config.toml, or "" if the
// platform has no config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gradescale", "config.toml")
}

// Validate checks the settings every binary depends on. Max points must be
// a whole number that fits the SetMaxPoints intent.
func (c Config) Validate() error {
	if !(c.MaxPoints > 0) || c.MaxPoints != math.Trunc(c.MaxPoints) || c.MaxPoints > math.MaxUint32 {
		return fmt.Errorf("config: max_points must be a positive whole number, got %v", c.MaxPoints)
	}
	return nil
}

// ValidateServer adds the checks for serving HTTP.
func (c Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.AuthSecret {
	case "":
		return errors.New("config: auth_secret is required")
	case DevSecret:
		return errors.New("config: auth_secret is the built-in development key; set AUTH_HMAC_SECRET")
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	setStr(&c.HTTPAddr, fc.HTTPAddr)
	if fc.DefaultScale != nil {
		c.DefaultScale = *fc.DefaultScale
	}
	if fc.MaxPoints != nil {
		c.MaxPoints = *fc.MaxPoints
	}
	setStr(&c.ExportPath, fc.ExportPath)
	setStr(&c.DBDriver, fc.DBDriver)
	setStr(&c.DBDSN, fc.DBDSN)
	if fc.EnableLocalAuth != nil {
		c.EnableLocalAuth = *fc.EnableLocalAuth
	}
	if fc.EnableGuestView != nil {
		c.EnableGuestView = *fc.EnableGuestView
	}
	setStr(&c.AdminUser, fc.AdminUser)
	setStr(&c.AdminPassHash, fc.AdminPassHash)
	setStr(&c.AuthSecret, fc.AuthSecret)
	if len(fc.CORSOrigins) > 0 {
		c.CORSOrigins = fc.CORSOrigins
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.HTTPAddr = envOr("HTTP_ADDR", c.HTTPAddr)
	if v := os.Getenv("DEFAULT_SCALE"); v != "" {
		if k, err := grading.ParseKind(v); err == nil {
			c.DefaultScale = k
		}
	}
	c.MaxPoints = envFloat("MAX_POINTS", c.MaxPoints)
	c.ExportPath = envOr("EXPORT_PATH", c.ExportPath)
	c.DBDriver = envOr("DB_DRIVER", c.DBDriver)
	c.DBDSN = envOr("DB_DSN", c.DBDSN)
	c.EnableLocalAuth = envBool("ENABLE_LOCAL_AUTH", c.EnableLocalAuth)
	c.EnableGuestView = envBool("ENABLE_GUEST_VIEW", c.EnableGuestView)
	c.AdminUser = envOr("ADMIN_USER", c.AdminUser)
	c.AdminPassHash = envOr("ADMIN_PASS_HASH", c.AdminPassHash)
	c.AuthSecret = envOr("AUTH_HMAC_SECRET", c.AuthSecret)
	if os.Getenv("CORS_ORIGINS") != "" {
		c.CORSOrigins = csvOr("CORS_ORIGINS", "")
	}
}

func defaultExportPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		docs := filepath.Join(home, "Documents")
		if st, err := os.Stat(docs); err == nil && st.IsDir() {
			return docs
		}
	}
	return "./data"
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envFloat(k string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil {
		return v
	}
	return def
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
