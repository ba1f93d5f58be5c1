package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandsClassify(t *testing.T) {
	bands := Bands{Proximity: 10, Warning: 5, Braking: 2}

	testCases := []struct {
		name     string
		distance float64
		expected AlertLevel
	}{
		{name: "Inside braking band", distance: 1.5, expected: LevelBraking},
		{name: "Exactly on braking boundary", distance: 2, expected: LevelWarning},
		{name: "Inside warning band", distance: 3, expected: LevelWarning},
		{name: "Exactly on warning boundary", distance: 5, expected: LevelProximity},
		{name: "Inside proximity band", distance: 9.99, expected: LevelProximity},
		{name: "Exactly on proximity boundary", distance: 10, expected: LevelNone},
		{name: "Far away", distance: 100, expected: LevelNone},
		{name: "Zero distance", distance: 0, expected: LevelBraking},
		{name: "NaN distance", distance: math.NaN(), expected: LevelNone},
		{name: "Infinite distance", distance: math.Inf(1), expected: LevelNone},
		{name: "Negative distance", distance: -1, expected: LevelNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bands.Classify(tc.distance))
		})
	}
}

func TestBandsScale(t *testing.T) {
	bands := Bands{Proximity: 5, Warning: 3, Braking: 1.5}

	scaled := bands.Scale(2)
	assert.Equal(t, Bands{Proximity: 10, Warning: 6, Braking: 3}, scaled)

	// A non-positive multiplier leaves the bands untouched.
	assert.Equal(t, bands, bands.Scale(0))
	assert.Equal(t, bands, bands.Scale(-1))
}

func TestAlertLevelOrdering(t *testing.T) {
	assert.True(t, LevelNone < LevelProximity)
	assert.True(t, LevelProximity < LevelWarning)
	assert.True(t, LevelWarning < LevelBraking)
}

func TestTimeToCollision(t *testing.T) {
	approaching := RiskAssessment{Distance: 10, ClosingSpeed: 2}
	assert.InDelta(t, 5.0, approaching.TimeToCollision(), 1e-9)

	separating := RiskAssessment{Distance: 10, ClosingSpeed: -1}
	assert.True(t, math.IsInf(separating.TimeToCollision(), 1))

	parallel := RiskAssessment{Distance: 10, ClosingSpeed: 0}
	assert.True(t, math.IsInf(parallel.TimeToCollision(), 1))
}
