package cache

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"FinanceLab/internal/model"
)

// SQLiteStore persists cached price series to a single local SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteStore opens (or creates) the cache database and runs
// migrations. A non-positive ttlHours makes every lookup a miss.
func NewSQLiteStore(dbPath string, ttlHours int, log zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so concurrent readers never block a writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{
		db:  db,
		ttl: time.Duration(ttlHours) * time.Hour,
		log: log.With().Str("component", "cache").Logger(),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.log.Info().Str("path", dbPath).Int("ttl_hours", ttlHours).Msg("sqlite cache opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS stock_data (
		ticker     TEXT,
		period     TEXT,
		updated_at TIMESTAMP,
		data       BLOB,
		PRIMARY KEY (ticker, period)
	)`)
	if err != nil {
		return fmt.Errorf("create stock_data: %w", err)
	}
	return nil
}

// Get looks up (ticker, period). Expired rows count as misses but are
// not deleted; the next Save overwrites them.
func (s *SQLiteStore) Get(ticker string, period model.Period) (*model.PriceSeries, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updatedAt int64
	var blob []byte
	err := s.db.QueryRow(
		"SELECT updated_at, data FROM stock_data WHERE ticker = ? AND period = ?",
		ticker, string(period),
	).Scan(&updatedAt, &blob)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("cache read failed, treating as miss")
		return nil, false
	}

	if time.Since(time.Unix(updatedAt, 0)) >= s.ttl {
		return nil, false
	}

	bars, err := decodeBars(blob)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("corrupt cache entry, treating as miss")
		return nil, false
	}
	return &model.PriceSeries{
		Ticker:    ticker,
		Bars:      bars,
		FetchedAt: time.Unix(updatedAt, 0).UTC(),
	}, true
}

// Save upserts the series with updated_at = now. Failures are logged and
// swallowed so the fetch path never fails on a cache problem.
func (s *SQLiteStore) Save(ticker string, period model.Period, series *model.PriceSeries) {
	blob, err := encodeBars(series.Bars)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("cache encode failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO stock_data (ticker, period, updated_at, data) VALUES (?,?,?,?)`,
		ticker, string(period), time.Now().Unix(), blob,
	)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("cache write failed")
	}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
