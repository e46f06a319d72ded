// Package config handles loading and validating the satsearch configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/satsearch-go/pkg/logger"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

// Config is the top-level application configuration.
type Config struct {
	DefaultProfile string                   `yaml:"default_profile"`
	Profiles       map[string]ProfileConfig `yaml:"profiles"`
	Logging        LoggingConfig            `yaml:"logging"`
	Mirror         MirrorConfig             `yaml:"mirror"`
	Server         ServerConfig             `yaml:"server"`
	Notifications  NotificationsConfig      `yaml:"notifications"`
	Telemetry      TelemetryConfig          `yaml:"telemetry"`
}

// ProfileConfig is one named set of SatSearch credentials.
type ProfileConfig struct {
	APIToken         string `yaml:"api_token"`
	ApplicationToken string `yaml:"application_token"`
	BaseURI          string `yaml:"base_uri"`
}

// MirrorConfig defines the local catalog mirror.
type MirrorConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Interval time.Duration  `yaml:"interval"`
	Timeout  time.Duration  `yaml:"timeout"`
	// Profile names the credentials used for syncing. Empty means
	// default_profile.
	Profile string `yaml:"profile"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ServerConfig defines the HTTP listener of `satsearch mirror run`. It
// serves the mirror API, health probes and Prometheus metrics.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	MetricsPath string `yaml:"metrics_path"`
}

// Addr returns host:port for net/http.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// NotificationsConfig defines where mirror sync failures are reported.
type NotificationsConfig struct {
	Discord   DiscordConfig   `yaml:"discord"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// RateLimitConfig throttles outbound notification webhooks.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
	// MaxDaily caps calls per rolling 24h window. Zero means no cap.
	MaxDaily int64 `yaml:"max_daily"`
}

// TelemetryConfig defines OpenTelemetry export for `satsearch mirror run`.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	ExportInterval time.Duration `yaml:"export_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with no profiles and every default
// applied. The CLI uses it when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Credentials returns the credentials of the named profile. An empty name
// selects default_profile.
func (c *Config) Credentials(profile string) (*satsearch.Credentials, error) {
	if profile == "" {
		profile = c.DefaultProfile
	}
	if profile == "" {
		return nil, errors.New("no profile selected and default_profile is not set")
	}

	p, ok := c.Profiles[profile]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (have: %v)", profile, c.ProfileNames())
	}
	return satsearch.NewCredentials(p.APIToken, p.ApplicationToken, p.BaseURI), nil
}

// ProfileNames returns the configured profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateMirror checks the settings the mirror commands need. They are
// optional for plain API use, so Load does not require them.
func (c *Config) ValidateMirror() error {
	var errs []error

	db := c.Mirror.Database
	if db.Host == "" {
		errs = append(errs, fmt.Errorf("mirror.database.host is required"))
	}
	if db.Name == "" {
		errs = append(errs, fmt.Errorf("mirror.database.name is required"))
	}
	if db.User == "" {
		errs = append(errs, fmt.Errorf("mirror.database.user is required"))
	}
	if c.Mirror.Interval < time.Minute {
		errs = append(errs, fmt.Errorf("mirror.interval must be at least 1m (got %s)", c.Mirror.Interval))
	}

	return errors.Join(errs...)
}

func applyDefaults(cfg *Config) {
	applyProfileDefaults(cfg)
	applyDatabaseDefaults(&cfg.Mirror.Database)
	applyMirrorDefaults(&cfg.Mirror)
	applyServerDefaults(&cfg.Server)
	applyRateLimitDefaults(&cfg.Notifications.RateLimit)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyProfileDefaults(cfg *Config) {
	for name, p := range cfg.Profiles {
		if p.BaseURI == "" {
			p.BaseURI = satsearch.DefaultBaseURI
			cfg.Profiles[name] = p
		}
	}
	if cfg.DefaultProfile == "" && len(cfg.Profiles) == 1 {
		for name := range cfg.Profiles {
			cfg.DefaultProfile = name
		}
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 4
	}
}

func applyMirrorDefaults(m *MirrorConfig) {
	if m.Interval == 0 {
		m.Interval = 6 * time.Hour
	}
	if m.Timeout == 0 {
		m.Timeout = 10 * time.Minute
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.MetricsPath == "" {
		s.MetricsPath = "/metrics"
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 0.5
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
	if t.ExportInterval == 0 {
		t.ExportInterval = time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = logger.FormatText
	}
}

func validate(cfg *Config) error {
	var errs []error

	for _, name := range cfg.ProfileNames() {
		p := cfg.Profiles[name]
		if p.APIToken == "" {
			errs = append(errs, fmt.Errorf("profiles.%s.api_token is required", name))
		}
		if p.ApplicationToken == "" {
			errs = append(errs, fmt.Errorf("profiles.%s.application_token is required", name))
		}
		if !satsearch.IsValidURI(p.BaseURI) {
			errs = append(errs, fmt.Errorf(
				"profiles.%s.base_uri must be an absolute http(s) URI (got %q)", name, p.BaseURI,
			))
		}
	}

	if cfg.DefaultProfile != "" {
		if _, ok := cfg.Profiles[cfg.DefaultProfile]; !ok {
			errs = append(errs, fmt.Errorf("default_profile %q is not a configured profile", cfg.DefaultProfile))
		}
	}
	if cfg.Mirror.Profile != "" {
		if _, ok := cfg.Profiles[cfg.Mirror.Profile]; !ok {
			errs = append(errs, fmt.Errorf("mirror.profile %q is not a configured profile", cfg.Mirror.Profile))
		}
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level,
		))
	}
	if !logger.ValidFormat(cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json, pretty (got %q)", cfg.Logging.Format,
		))
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, errors.New("notifications.discord.webhook_url is required when discord is enabled"))
	}
	rl := cfg.Notifications.RateLimit
	if rl.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("notifications.rate_limit.per_second must be positive (got %g)", rl.PerSecond))
	}
	if rl.Burst < 1 {
		errs = append(errs, fmt.Errorf("notifications.rate_limit.burst must be at least 1 (got %d)", rl.Burst))
	}
	if rl.MaxDaily < 0 {
		errs = append(errs, fmt.Errorf("notifications.rate_limit.max_daily must not be negative (got %d)", rl.MaxDaily))
	}
	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"telemetry.sample_ratio must be between 0 and 1 (got %g)", cfg.Telemetry.SampleRatio,
		))
	}
	if !strings.HasPrefix(cfg.Server.MetricsPath, "/") {
		errs = append(errs, fmt.Errorf("server.metrics_path must start with / (got %q)", cfg.Server.MetricsPath))
	}
	if strings.HasPrefix(cfg.Server.MetricsPath, "/api/") {
		errs = append(errs, fmt.Errorf("server.metrics_path must not be under /api/ (got %q)", cfg.Server.MetricsPath))
	}

	return errors.Join(errs...)
}
