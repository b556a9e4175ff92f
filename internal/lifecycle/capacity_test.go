package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack_HighTier(t *testing.T) {
	c := Track(46, 50)

	require.NotNil(t, c.Percentage)
	assert.InDelta(t, 92.0, *c.Percentage, 0.0001)
	assert.Equal(t, TierHigh, c.Tier)
	assert.Equal(t, "92%", c.Display)
	assert.False(t, c.Unbounded())
}

func TestTrack_Tiers(t *testing.T) {
	cases := []struct {
		attendees, limit int
		want             Tier
	}{
		{0, 10, TierLow},
		{69, 100, TierLow},
		{70, 100, TierMedium},
		{89, 100, TierMedium},
		{90, 100, TierHigh},
		{100, 100, TierHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Track(tc.attendees, tc.limit).Tier, "%d/%d", tc.attendees, tc.limit)
	}
}

func TestTrack_Overbooked(t *testing.T) {
	c := Track(60, 50)

	require.NotNil(t, c.Percentage)
	assert.InDelta(t, 120.0, *c.Percentage, 0.0001)
	assert.Equal(t, "120%", c.Display)
	assert.Equal(t, 100.0, c.BarWidth)
	assert.Equal(t, TierHigh, c.Tier)
}

func TestTrack_ZeroCapacity(t *testing.T) {
	c := Track(0, 0)

	assert.True(t, c.Unbounded())
	assert.Equal(t, TierHigh, c.Tier)
	assert.Equal(t, Unbounded, c.Display)
	assert.NotContains(t, c.Display, "NaN")
	assert.NotContains(t, c.Display, "Inf")
}
