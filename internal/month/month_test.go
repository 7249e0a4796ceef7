package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		m    Month
		want string
	}{
		{Month{2024, time.October}, "10-2024"},
		{Month{2025, time.January}, "01-2025"},
		{Of(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)), "12-2023"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.String())
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("10-2024")
	require.NoError(t, err)
	assert.Equal(t, Month{2024, time.October}, got)

	got, err = Parse("01-1999")
	require.NoError(t, err)
	assert.Equal(t, Month{1999, time.January}, got)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "10", "2024-10", "13-2024", "00-2024", "1-2024", "ab-2024", "10-20x4", "config.yaml"} {
		_, err := Parse(s)
		assert.Error(t, err, "Parse(%q)", s)
	}
}

func TestBefore(t *testing.T) {
	assert.True(t, Month{2024, time.December}.Before(Month{2025, time.January}))
	assert.True(t, Month{2025, time.January}.Before(Month{2025, time.February}))
	assert.False(t, Month{2025, time.February}.Before(Month{2025, time.February}))
	assert.False(t, Month{2026, time.January}.Before(Month{2025, time.December}))
}
