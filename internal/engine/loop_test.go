package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCatchUpSteps(t *testing.T) {
	start := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		gap         time.Duration
		applied     int
		wantSteps   int
		wantApplied int
	}{
		{"on time", time.Second, 0, 1, 1},
		{"next period", 2 * time.Second, 1, 1, 2},
		{"slightly late", 2900 * time.Millisecond, 1, 1, 2},
		{"duplicate delivery", 2 * time.Second, 2, 0, 2},
		{"three periods late", 5 * time.Second, 2, 3, 5},
		{"clock went backwards", -time.Minute, 4, 0, 4},
		{"long suspension is capped", time.Hour, 10, maxCatchUp, 3600},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			steps, applied := catchUpSteps(start, start.Add(tc.gap), tc.applied)

			assert.Equal(t, tc.wantSteps, steps)
			assert.Equal(t, tc.wantApplied, applied)
		})
	}
}
