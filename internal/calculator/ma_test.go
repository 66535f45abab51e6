package calculator

import (
	"math"
	"testing"
)

func TestCalculateSMA(t *testing.T) {
	sma := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)

	if len(sma) != 5 {
		t.Fatalf("expected 5 points, got %d", len(sma))
	}
	if !math.IsNaN(sma[0]) || !math.IsNaN(sma[1]) {
		t.Errorf("first two points should be NaN, got %v %v", sma[0], sma[1])
	}
	if sma[2] != 2.0 {
		t.Errorf("expected sma[2] = 2.0, got %v", sma[2])
	}
	if sma[3] != 3.0 || sma[4] != 4.0 {
		t.Errorf("expected 3.0 and 4.0, got %v %v", sma[3], sma[4])
	}
}

func TestCalculateSMA_InsufficientData(t *testing.T) {
	sma := CalculateSMA([]float64{1, 2}, 5)
	for i, v := range sma {
		if !math.IsNaN(v) {
			t.Errorf("point %d should be NaN, got %v", i, v)
		}
	}
}

func TestLatest(t *testing.T) {
	if got := Latest([]float64{1, 2, 3}, 0); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
	if got := Latest([]float64{1, math.NaN()}, 50); got != 50 {
		t.Errorf("expected fallback 50 for NaN tail, got %v", got)
	}
	if got := Latest(nil, 50); got != 50 {
		t.Errorf("expected fallback 50 for empty series, got %v", got)
	}
}
