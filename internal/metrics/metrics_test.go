package metrics

import (
	"math"
	"testing"
)

func TestDailyReturns(t *testing.T) {
	rets := DailyReturns([]float64{100, 101, 100, 101})

	if len(rets) != 4 {
		t.Fatalf("expected 4 points, got %d", len(rets))
	}
	if !math.IsNaN(rets[0]) {
		t.Errorf("first return should be NaN, got %v", rets[0])
	}
	if math.Abs(rets[1]-0.01) > 1e-12 {
		t.Errorf("expected 0.01, got %v", rets[1])
	}
	if math.Abs(rets[2]-(-1.0/101.0)) > 1e-12 {
		t.Errorf("expected %v, got %v", -1.0/101.0, rets[2])
	}
}

func TestDailyReturns_ZeroPrice(t *testing.T) {
	rets := DailyReturns([]float64{0, 100})
	if rets[1] != 0.0 {
		t.Errorf("zero previous price should give 0.0, got %v", rets[1])
	}
}

func TestCumulativeReturn(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0.0},
		{"zero first value", []float64{0, 50}, 0.0},
		{"gain", []float64{100, 110}, 0.1},
		{"loss", []float64{100, 75}, -0.25},
		{"single point", []float64{42}, 0.0},
	}
	for _, tt := range tests {
		if got := CumulativeReturn(tt.values); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestVolatility(t *testing.T) {
	rets := []float64{math.NaN(), 0.01, -0.01, 0.01}

	// Sample stddev of (0.01, -0.01, 0.01).
	want := 0.011547005383792516
	if got := Volatility(rets, false); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}

	wantAnnualized := want * math.Sqrt(252)
	if got := Volatility(rets, true); math.Abs(got-wantAnnualized) > 1e-12 {
		t.Errorf("expected %v, got %v", wantAnnualized, got)
	}
}

func TestVolatility_InsufficientData(t *testing.T) {
	if got := Volatility([]float64{math.NaN(), 0.01}, true); got != 0.0 {
		t.Errorf("expected 0.0 with a single valid return, got %v", got)
	}
	if got := Volatility(nil, true); got != 0.0 {
		t.Errorf("expected 0.0 for empty input, got %v", got)
	}
}

func TestMaxDrawdown(t *testing.T) {
	// Peak 120, trough 90: 30/120 = 25% decline.
	if got := MaxDrawdown([]float64{100, 120, 90, 110}); got != -0.25 {
		t.Errorf("expected -0.25, got %v", got)
	}
}

func TestMaxDrawdown_MonotonicRise(t *testing.T) {
	if got := MaxDrawdown([]float64{1, 2, 3, 4}); got != 0.0 {
		t.Errorf("expected 0.0 for a rising series, got %v", got)
	}
}

func TestMaxDrawdown_ZeroPeak(t *testing.T) {
	// Leading zero peaks are skipped rather than dividing by zero.
	if got := MaxDrawdown([]float64{0, 0, 100, 50}); got != -0.5 {
		t.Errorf("expected -0.5, got %v", got)
	}
	if got := MaxDrawdown(nil); got != 0.0 {
		t.Errorf("expected 0.0 for empty series, got %v", got)
	}
}
