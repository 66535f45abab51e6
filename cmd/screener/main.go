package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"FinanceLab/internal/cache"
	"FinanceLab/internal/collector"
	"FinanceLab/internal/config"
	"FinanceLab/internal/model"
	"FinanceLab/internal/report"
	"FinanceLab/internal/scheduler"
	"FinanceLab/internal/screener"
	"FinanceLab/internal/strategy"
	"FinanceLab/pkg/logger"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("config validation")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Msg("FinanceLab starting")

	period, _ := model.ParsePeriod(cfg.Watchlist.Period) // validated above

	// Cache: degrade to noop if the file cannot be opened; screening
	// must still work without it.
	var store cache.Store
	if s, err := cache.NewSQLiteStore(cfg.Cache.Path, cfg.Cache.TTLHours, log); err != nil {
		log.Warn().Err(err).Msg("cache unavailable, continuing without caching")
		store = cache.NewNoopStore()
	} else {
		store = s
	}
	defer store.Close()

	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "finance-go":
		fetcher = collector.NewFinanceGoFetcher()
	default:
		fetcher = collector.NewYahooFetcher(cfg.DataSource.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	loader := collector.NewLoader(fetcher, store, log)
	engine := strategy.NewEngine(log)
	svc := screener.NewService(loader, engine, log)

	run := func() {
		results := svc.Screen(cfg.Watchlist.Tickers, period, cfg.Watchlist.RiskProfile)
		fmt.Print(report.FormatSummary(results, cfg.Watchlist.RiskProfile))
		if err := report.WriteCSV(cfg.Report.OutputPath, results); err != nil {
			log.Error().Err(err).Msg("write report")
		} else {
			log.Info().Str("path", cfg.Report.OutputPath).Msg("report written")
		}
	}

	run()

	if !cfg.Schedule.Enabled {
		return
	}

	sched := scheduler.NewScheduler(log)
	if err := sched.Register(cfg.Schedule.RefreshCron, run); err != nil {
		log.Fatal().Err(err).Msg("register refresh job")
	}
	sched.Start()
	defer sched.Stop()

	log.Info().Str("cron", cfg.Schedule.RefreshCron).Msg("running until interrupted")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received, stopping")
}
