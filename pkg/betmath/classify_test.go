package betmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestValueBandsClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected Band
	}{
		{name: "strong at 6", value: f(6), expected: BandStrong},
		{name: "strong at threshold 5", value: f(5), expected: BandStrong},
		{name: "moderate at 2", value: f(2), expected: BandModerate},
		{name: "moderate just under strong", value: f(4.9), expected: BandModerate},
		{name: "slight at 0", value: f(0), expected: BandSlight},
		{name: "slight just under moderate", value: f(1.9), expected: BandSlight},
		{name: "negative", value: f(-1), expected: BandNegative},
		{name: "absent is none, not slight nor negative", value: nil, expected: BandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EdgeBands.Classify(tt.value))
			// EV usa os mesmos limiares, invocado separadamente.
			assert.Equal(t, tt.expected, EVBands.Classify(tt.value))
		})
	}
}

func TestBandLabel(t *testing.T) {
	assert.Equal(t, "Strong Value", BandStrong.Label())
	assert.Equal(t, "No Data", BandNone.Label())
}

func TestConfidenceTiers(t *testing.T) {
	assert.Equal(t, TierHigh, ConfidenceTiers.Tier(f(85)))
	assert.Equal(t, TierHigh, ConfidenceTiers.Tier(f(80)))
	assert.Equal(t, TierMedium, ConfidenceTiers.Tier(f(60)))
	assert.Equal(t, TierLow, ConfidenceTiers.Tier(f(59.9)))
	assert.Equal(t, TierNone, ConfidenceTiers.Tier(nil))
}

func TestSharpMoneyTiers(t *testing.T) {
	assert.Equal(t, TierHigh, SharpMoneyTiers.Tier(f(70)))
	assert.Equal(t, TierMedium, SharpMoneyTiers.Tier(f(50)))
	assert.Equal(t, TierLow, SharpMoneyTiers.Tier(f(49)))
	assert.Equal(t, TierNone, SharpMoneyTiers.Tier(nil))
}
