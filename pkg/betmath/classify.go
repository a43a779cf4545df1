package betmath

// Band é a faixa de exibição de um percentual de edge/EV.
type Band string

const (
	BandStrong   Band = "strong"
	BandModerate Band = "moderate"
	BandSlight   Band = "slight"
	BandNegative Band = "negative"
	BandNone     Band = "none" // sem dado; distinto de edge zero
)

// ValueBands parametriza o classificador de quatro faixas.
// Edge e EV usam os mesmos limiares mas são invocados separadamente.
type ValueBands struct {
	Strong   float64
	Moderate float64
}

var (
	EdgeBands = ValueBands{Strong: 5, Moderate: 2}
	EVBands   = ValueBands{Strong: 5, Moderate: 2}
)

// Classify classifica um percentual em faixa de exibição.
// nil vira BandNone: "sem dado" e "edge zero" são classes distintas e os
// chamadores não podem tratá-las como equivalentes.
func (b ValueBands) Classify(v *float64) Band {
	if v == nil {
		return BandNone
	}
	switch {
	case *v >= b.Strong:
		return BandStrong
	case *v >= b.Moderate:
		return BandModerate
	case *v >= 0:
		return BandSlight
	default:
		return BandNegative
	}
}

// Label é o texto exibido no badge da faixa.
func (b Band) Label() string {
	switch b {
	case BandStrong:
		return "Strong Value"
	case BandModerate:
		return "Moderate Value"
	case BandSlight:
		return "Slight Value"
	case BandNegative:
		return "Negative EV"
	default:
		return "No Data"
	}
}

// TierLevel é o nível de um percentual de confiança/sharp money.
type TierLevel string

const (
	TierHigh   TierLevel = "high"
	TierMedium TierLevel = "medium"
	TierLow    TierLevel = "low"
	TierNone   TierLevel = "none"
)

// Tiers parametriza o classificador de três níveis.
type Tiers struct {
	High float64
	Mid  float64
}

var (
	ConfidenceTiers = Tiers{High: 80, Mid: 60}
	SharpMoneyTiers = Tiers{High: 70, Mid: 50}
)

// Tier classifica um percentual em nível; nil vira TierNone.
func (t Tiers) Tier(v *float64) TierLevel {
	if v == nil {
		return TierNone
	}
	switch {
	case *v >= t.High:
		return TierHigh
	case *v >= t.Mid:
		return TierMedium
	default:
		return TierLow
	}
}
