package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"FinanceLab/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Watchlist struct {
		Name        string   `yaml:"name"`
		Tickers     []string `yaml:"tickers"`
		Period      string   `yaml:"period"`
		RiskProfile string   `yaml:"risk_profile"`
	} `yaml:"watchlist"`
	Cache struct {
		Path     string `yaml:"path"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"cache"`
	DataSource struct {
		Provider string `yaml:"provider"` // "yahoo" or "finance-go"
		Proxy    string `yaml:"proxy"`
	} `yaml:"data_source"`
	Report struct {
		OutputPath string `yaml:"output_path"`
	} `yaml:"report"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
		Enabled     bool   `yaml:"enabled"`
	} `yaml:"schedule"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
}

// defaultTickers mirrors the stock watchlist shipped with the app.
var defaultTickers = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA",
	"SPY", "QQQ", "GLD", "KO", "JNJ",
	"NVDA", "AMD", "WMT", "DIS", "V",
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; everything has a
// default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WATCHLIST_TICKERS"); v != "" {
		var tickers []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
				tickers = append(tickers, t)
			}
		}
		cfg.Watchlist.Tickers = tickers
	}
	if v := os.Getenv("ANALYSIS_PERIOD"); v != "" {
		cfg.Watchlist.Period = v
	}
	if v := os.Getenv("RISK_PROFILE"); v != "" {
		cfg.Watchlist.RiskProfile = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("CACHE_TTL_HOURS"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLHours = ttl
		}
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("REPORT_PATH"); v != "" {
		cfg.Report.OutputPath = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
		cfg.Schedule.Enabled = true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Watchlist.Name == "" {
		cfg.Watchlist.Name = "default"
	}
	if len(cfg.Watchlist.Tickers) == 0 {
		cfg.Watchlist.Tickers = defaultTickers
	}
	if cfg.Watchlist.Period == "" {
		cfg.Watchlist.Period = "1y"
	}
	if cfg.Watchlist.RiskProfile == "" {
		cfg.Watchlist.RiskProfile = "Moderate"
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = "finance_lab_cache.db"
	}
	if cfg.Cache.TTLHours == 0 {
		cfg.Cache.TTLHours = 6
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Report.OutputPath == "" {
		cfg.Report.OutputPath = "screen_report.csv"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 7 * * 1-5"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks fields that have no safe fallback.
func (c *Config) Validate() error {
	if len(c.Watchlist.Tickers) == 0 {
		return fmt.Errorf("watchlist.tickers must not be empty")
	}
	if _, err := model.ParsePeriod(c.Watchlist.Period); err != nil {
		return fmt.Errorf("watchlist.period: %w", err)
	}
	switch c.DataSource.Provider {
	case "yahoo", "finance-go":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or finance-go, got %q", c.DataSource.Provider)
	}
	return nil
}
