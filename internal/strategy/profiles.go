package strategy

import "FinanceLab/internal/model"

// riskProfiles is the fixed weight table (risk_penalty, momentum_weight,
// trend_weight). Built once; never mutated.
var riskProfiles = map[string]model.RiskProfile{
	"Conservative": {Name: "Conservative", RiskPenalty: 2.0, MomentumWeight: 0.5, TrendWeight: 1.0},
	"Moderate":     {Name: "Moderate", RiskPenalty: 1.0, MomentumWeight: 1.0, TrendWeight: 1.0},
	"Aggressive":   {Name: "Aggressive", RiskPenalty: 0.5, MomentumWeight: 1.5, TrendWeight: 1.2},
}

// ProfileByName returns the named risk profile, falling back to Moderate
// for unknown names.
func ProfileByName(name string) model.RiskProfile {
	if p, ok := riskProfiles[name]; ok {
		return p
	}
	return riskProfiles["Moderate"]
}
