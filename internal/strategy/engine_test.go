package strategy

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"FinanceLab/internal/model"
)

func makeSeries(ticker string, base float64, count int, drift float64) *model.PriceSeries {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := base + float64(i)*drift
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return &model.PriceSeries{Ticker: ticker, Bars: bars}
}

func TestAnalyzeTicker_InsufficientData(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	for _, profile := range []string{"Conservative", "Moderate", "Aggressive"} {
		res := engine.AnalyzeTicker("TEST", makeSeries("TEST", 100, 10, 1), profile)

		if res.Score != 0 {
			t.Errorf("%s: expected score 0, got %v", profile, res.Score)
		}
		if res.Recommendation != model.RecommendNA {
			t.Errorf("%s: expected N/A, got %s", profile, res.Recommendation)
		}
		if len(res.Reasoning) != 1 || res.Reasoning[0] != "Insufficient Data" {
			t.Errorf("%s: expected [Insufficient Data], got %v", profile, res.Reasoning)
		}
		if res.Metrics != (model.AssetMetrics{}) {
			t.Errorf("%s: expected zero metrics, got %+v", profile, res.Metrics)
		}
	}
}

func TestAnalyzeTicker_NilSeries(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	res := engine.AnalyzeTicker("TEST", nil, "Moderate")
	if res.Recommendation != model.RecommendNA {
		t.Errorf("expected N/A for nil series, got %s", res.Recommendation)
	}
}

func TestAnalyzeTicker_Uptrend(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	res := engine.AnalyzeTicker("TEST", makeSeries("TEST", 100, 200, 1), "Moderate")

	if res.Ticker != "TEST" {
		t.Errorf("expected ticker TEST, got %s", res.Ticker)
	}
	if res.Score <= 50 {
		t.Errorf("expected score > 50 for a strong uptrend, got %v", res.Score)
	}
	if res.Recommendation != model.RecommendBuy && res.Recommendation != model.RecommendHold {
		t.Errorf("expected Buy or Hold, got %s", res.Recommendation)
	}
	if len(res.Reasoning) != 3 {
		t.Fatalf("expected 3 reasons, got %v", res.Reasoning)
	}
	if res.Reasoning[0] != "Golden Cross (Bullish Trend)" {
		t.Errorf("expected golden cross first, got %q", res.Reasoning[0])
	}
	if res.Reasoning[1] != "Price above SMA 200 (Long-term Bullish)" {
		t.Errorf("expected price-above reason second, got %q", res.Reasoning[1])
	}
	if res.Metrics.RSI != 100 {
		t.Errorf("monotonic rise should pin RSI at 100, got %v", res.Metrics.RSI)
	}
	if res.Metrics.TotalReturn <= 0 {
		t.Errorf("expected positive total return, got %v", res.Metrics.TotalReturn)
	}
}

func TestAnalyzeTicker_ScoreMonotonicity(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	for _, profile := range []string{"Conservative", "Moderate", "Aggressive"} {
		up := engine.AnalyzeTicker("UP", makeSeries("UP", 100, 200, 1), profile)
		down := engine.AnalyzeTicker("DOWN", makeSeries("DOWN", 300, 200, -1), profile)

		if up.Score < down.Score {
			t.Errorf("%s: uptrend score %.2f below downtrend score %.2f", profile, up.Score, down.Score)
		}
	}
}

func TestAnalyzeTicker_UnknownProfileFallsBackToModerate(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	moderate := engine.AnalyzeTicker("TEST", makeSeries("TEST", 100, 200, 1), "Moderate")
	unknown := engine.AnalyzeTicker("TEST", makeSeries("TEST", 100, 200, 1), "YOLO")

	if moderate.Score != unknown.Score {
		t.Errorf("unknown profile should score with Moderate weights: %.4f vs %.4f", moderate.Score, unknown.Score)
	}
	if unknown.RiskProfile != "YOLO" {
		t.Errorf("result should carry the requested profile name, got %q", unknown.RiskProfile)
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		m       model.AssetMetrics
		want    model.Recommendation
		reasons int
	}{
		{
			name:    "golden cross and price above with neutral rsi is a buy",
			m:       model.AssetMetrics{CurrentPrice: 105, SMA50: 101, SMA200: 100, RSI: 50},
			want:    model.RecommendBuy,
			reasons: 3,
		},
		{
			name:    "death cross and price below with neutral rsi is a sell",
			m:       model.AssetMetrics{CurrentPrice: 95, SMA50: 90, SMA200: 100, RSI: 50},
			want:    model.RecommendSell,
			reasons: 3,
		},
		{
			name:    "equal smas fire no trend signal",
			m:       model.AssetMetrics{CurrentPrice: 105, SMA50: 100, SMA200: 100, RSI: 50},
			want:    model.RecommendHold,
			reasons: 2,
		},
		{
			name:    "oversold rsi offsets a bearish trend",
			m:       model.AssetMetrics{CurrentPrice: 95, SMA50: 90, SMA200: 100, RSI: 25},
			want:    model.RecommendHold,
			reasons: 3,
		},
		{
			name:    "overbought rsi drags a bullish trend to hold",
			m:       model.AssetMetrics{CurrentPrice: 105, SMA50: 101, SMA200: 100, RSI: 75},
			want:    model.RecommendHold,
			reasons: 3,
		},
	}
	for _, tt := range tests {
		rec, reasons := recommend(tt.m)
		if rec != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, rec)
		}
		if len(reasons) != tt.reasons {
			t.Errorf("%s: expected %d reasons, got %v", tt.name, tt.reasons, reasons)
		}
	}
}

func TestCompositeScore_MomentumBands(t *testing.T) {
	base := model.AssetMetrics{CurrentPrice: 90, SMA50: 90, SMA200: 100}
	moderate := ProfileByName("Moderate")

	// trend 50, risk 100; final = (50 + 100 + momentum) / 3.
	tests := []struct {
		rsi  float64
		want float64
	}{
		{25, 80},          // oversold band: momentum 90
		{75, 170.0 / 3.0}, // overbought band: momentum 20
		{40, 70},          // neutral band: momentum 60
		{50, 200.0 / 3.0}, // dead center: momentum 50
		{60, 190.0 / 3.0}, // momentum 50+(50-60)=40
	}
	for _, tt := range tests {
		m := base
		m.RSI = tt.rsi
		got := compositeScore(m, moderate)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("rsi %.0f: expected %.4f, got %.4f", tt.rsi, tt.want, got)
		}
	}
}

func TestCompositeScore_RiskPenaltyCaps(t *testing.T) {
	// Extreme volatility and drawdown cap at 50 points each before the
	// penalty weight applies.
	m := model.AssetMetrics{CurrentPrice: 90, SMA50: 90, SMA200: 100, Volatility: 3.0, MaxDrawdown: -0.9, RSI: 50}
	conservative := ProfileByName("Conservative")

	// risk = max(0, 100 - 50*2 - 50*2) = 0; trend 50, momentum 50.
	// final = (50*1 + 0*0.5 + 50*0.5) / (1 + 2*0.5) = 37.5
	got := compositeScore(m, conservative)
	if got != 37.5 {
		t.Errorf("expected 37.5, got %v", got)
	}
}

func TestProfileByName(t *testing.T) {
	if p := ProfileByName("Aggressive"); p.RiskPenalty != 0.5 || p.MomentumWeight != 1.5 || p.TrendWeight != 1.2 {
		t.Errorf("unexpected aggressive weights: %+v", p)
	}
	if p := ProfileByName("nonsense"); p.Name != "Moderate" {
		t.Errorf("expected Moderate fallback, got %s", p.Name)
	}
}
