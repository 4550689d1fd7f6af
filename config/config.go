package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/tradedesk/calendar"
	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/logger"
	"github.com/rustyeddy/tradedesk/numeric"
	"github.com/rustyeddy/tradedesk/pair"
	"github.com/rustyeddy/tradedesk/risk"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tradedesk configuration
type Config struct {
	Store    StoreConfig    `json:"store" yaml:"store"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Pairs    PairsConfig    `json:"pairs" yaml:"pairs"`
	Accounts AccountsConfig `json:"accounts" yaml:"accounts"`
	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`
}

// StoreConfig selects where collections are persisted
type StoreConfig struct {
	Type string `json:"type" yaml:"type"` // "sqlite", "badger" or "memory"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

type LogConfig struct {
	Level      string `json:"level" yaml:"level"`
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// PairsConfig contains bias tracker parameters
type PairsConfig struct {
	UnnamedTTL string `json:"unnamed_ttl" yaml:"unnamed_ttl"` // e.g. "30s"
}

// ParseTTL converts UnnamedTTL to a duration; empty means the default.
func (pc PairsConfig) ParseTTL() (time.Duration, error) {
	if pc.UnnamedTTL == "" {
		return pair.DefaultUnnamedTTL, nil
	}
	return time.ParseDuration(pc.UnnamedTTL)
}

// AccountsConfig holds the values a new account starts with
type AccountsConfig struct {
	DefaultRiskPercentage string `json:"default_risk_percentage" yaml:"default_risk_percentage"`
	DefaultRoundTo        int    `json:"default_round_to" yaml:"default_round_to"`
}

func (ac AccountsConfig) Defaults() risk.Defaults {
	return risk.Defaults{RiskPercentage: ac.DefaultRiskPercentage, RoundTo: ac.DefaultRoundTo}
}

type CalendarConfig struct {
	TradingDays []string `json:"trading_days" yaml:"trading_days"`
}

// Weekdays parses TradingDays; empty means calendar.DefaultTradingDays.
func (cc CalendarConfig) Weekdays() ([]time.Weekday, error) {
	if len(cc.TradingDays) == 0 {
		return calendar.DefaultTradingDays, nil
	}
	out := make([]time.Weekday, 0, len(cc.TradingDays))
	for _, name := range cc.TradingDays {
		wd, ok := calendar.ParseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		out = append(out, wd)
	}
	return out, nil
}

func (lc LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:      lc.Level,
		File:       lc.File,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
		Compress:   lc.Compress,
	}
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Store.Type {
	case journal.BackendSQLite, journal.BackendBadger:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path required for %s store", c.Store.Type)
		}
	case journal.BackendMemory:
	default:
		return fmt.Errorf("store.type must be 'sqlite', 'badger' or 'memory'")
	}

	ttl, err := c.Pairs.ParseTTL()
	if err != nil {
		return fmt.Errorf("pairs.unnamed_ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("pairs.unnamed_ttl must be positive")
	}

	pct := numeric.Parse(c.Accounts.DefaultRiskPercentage)
	if pct < risk.MinRiskPercentage || pct > risk.MaxRiskPercentage {
		return fmt.Errorf("accounts.default_risk_percentage must be between %d and %d",
			risk.MinRiskPercentage, risk.MaxRiskPercentage)
	}
	if c.Accounts.DefaultRoundTo < 0 {
		return fmt.Errorf("accounts.default_round_to must not be negative")
	}

	if _, err := c.Calendar.Weekdays(); err != nil {
		return fmt.Errorf("calendar.trading_days: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Type: journal.BackendSQLite,
			Path: "./tradedesk.sqlite",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Pairs: PairsConfig{
			UnnamedTTL: "30s",
		},
		Accounts: AccountsConfig{
			DefaultRiskPercentage: risk.DefaultDefaults.RiskPercentage,
			DefaultRoundTo:        risk.DefaultDefaults.RoundTo,
		},
		Calendar: CalendarConfig{
			TradingDays: []string{"Monday", "Tuesday", "Thursday"},
		},
	}
}
