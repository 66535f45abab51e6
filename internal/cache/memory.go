package cache

import (
	"sync"
	"time"

	"FinanceLab/internal/model"
)

type memoryKey struct {
	ticker string
	period model.Period
}

type memoryEntry struct {
	bars      []model.OHLCV
	updatedAt time.Time
}

// MemoryStore is a map-backed Store with the same TTL semantics as the
// SQLite store. Used by tests and embeddable callers.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[memoryKey]memoryEntry
}

// NewMemoryStore creates an in-memory cache store.
func NewMemoryStore(ttlHours int) *MemoryStore {
	return &MemoryStore{
		ttl:     time.Duration(ttlHours) * time.Hour,
		entries: make(map[memoryKey]memoryEntry),
	}
}

func (s *MemoryStore) Get(ticker string, period model.Period) (*model.PriceSeries, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[memoryKey{ticker, period}]
	if !ok || time.Since(e.updatedAt) >= s.ttl {
		return nil, false
	}
	bars := make([]model.OHLCV, len(e.bars))
	copy(bars, e.bars)
	return &model.PriceSeries{Ticker: ticker, Bars: bars, FetchedAt: e.updatedAt}, true
}

func (s *MemoryStore) Save(ticker string, period model.Period, series *model.PriceSeries) {
	bars := make([]model.OHLCV, len(series.Bars))
	copy(bars, series.Bars)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[memoryKey{ticker, period}] = memoryEntry{bars: bars, updatedAt: time.Now()}
}

func (s *MemoryStore) Close() error { return nil }
