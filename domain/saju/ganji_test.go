package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGanji_RoundTrip(t *testing.T) {
	// Act
	pillars, err := ParseGanji("갑자년 을축월 병인일")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "갑자", pillars.Year.String())
	assert.Equal(t, "을축", pillars.Month.String())
	assert.Equal(t, "병인", pillars.Day.String())
}

func TestParseGanji_TrailingDescriptiveText(t *testing.T) {
	pillars, err := ParseGanji("계유년 임오월 병인일 (음력 5월 24일)")

	require.NoError(t, err)
	assert.Equal(t, "계유", pillars.Year.String())
	assert.Equal(t, "임오", pillars.Month.String())
	assert.Equal(t, "병인", pillars.Day.String())
}

func TestParseGanji_MissingPillars(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no day", "갑자년 을축월"},
		{"no month", "갑자년 병인일"},
		{"no year", "을축월 병인일"},
		{"not pillar text", "1993-06-24"},
		{"invalid glyph pair", "자갑년 을축월 병인일"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGanji(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestDayStem_ExtractsIndependently(t *testing.T) {
	stem, ok := DayStem("병인일")

	require.True(t, ok)
	assert.Equal(t, "병", stem.String())
}

func TestDayStem_FromFullText(t *testing.T) {
	stem, ok := DayStem("갑자년 을축월 병인일")

	require.True(t, ok)
	assert.Equal(t, "병", stem.String())
}

func TestDayStem_NoMatch(t *testing.T) {
	_, ok := DayStem("갑자년 을축월")
	assert.False(t, ok)

	_, ok = DayStem("")
	assert.False(t, ok)
}
