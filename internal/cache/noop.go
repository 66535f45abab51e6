package cache

import "FinanceLab/internal/model"

// NoopStore is used when the cache file cannot be opened: analysis still
// runs, every lookup misses, every save is dropped.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Get(_ string, _ model.Period) (*model.PriceSeries, bool) { return nil, false }
func (n *NoopStore) Save(_ string, _ model.Period, _ *model.PriceSeries)     {}
func (n *NoopStore) Close() error                                            { return nil }
