package model

import "fmt"

// Period is a provider history range.
type Period string

const (
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
	Period2y  Period = "2y"
	Period5y  Period = "5y"
	PeriodYTD Period = "ytd"
)

var validPeriods = map[Period]bool{
	Period1mo: true,
	Period3mo: true,
	Period6mo: true,
	Period1y:  true,
	Period2y:  true,
	Period5y:  true,
	PeriodYTD: true,
}

// ParsePeriod validates a period string against the fixed enum.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !validPeriods[p] {
		return "", fmt.Errorf("invalid period %q", s)
	}
	return p, nil
}
