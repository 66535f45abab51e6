package model

// RiskProfile is a named weighting scheme for the composite score.
type RiskProfile struct {
	Name           string
	RiskPenalty    float64
	MomentumWeight float64
	TrendWeight    float64
}

// Watchlist is a named list of tickers to screen.
type Watchlist struct {
	Name    string   `yaml:"name"`
	Tickers []string `yaml:"tickers"`
}
