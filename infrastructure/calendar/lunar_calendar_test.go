package calendar

import (
	"context"
	"regexp"
	"testing"

	"manse-backend/domain/saju"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var ganjiPattern = regexp.MustCompile(
	`^[갑을병정무기경신임계][자축인묘진사오미신유술해]년 ` +
		`[갑을병정무기경신임계][자축인묘진사오미신유술해]월 ` +
		`[갑을병정무기경신임계][자축인묘진사오미신유술해]일$`)

func TestGanjiFromSolar_KnownDates(t *testing.T) {
	// Arrange
	adapter := NewLunarCalendar(zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name             string
		year, month, day int
		want             string
	}{
		// 1990-01-01 precedes both the lunar new year and 입춘, so the
		// year pillar is still 기사; the date sits in the 자 month
		{"1990-01-01", 1990, 1, 1, "기사년 병자월 병인일"},
		{"2000-01-01", 2000, 1, 1, "기묘년 병자월 무오일"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := adapter.GanjiFromSolar(ctx, tt.year, tt.month, tt.day)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGanjiFromSolar_OutputSatisfiesParser(t *testing.T) {
	adapter := NewLunarCalendar(zap.NewNop())

	got, err := adapter.GanjiFromSolar(context.Background(), 1990, 1, 1)

	require.NoError(t, err)
	assert.Regexp(t, ganjiPattern, got)

	pillars, err := saju.ParseGanji(got)
	require.NoError(t, err)
	assert.Equal(t, "병인", pillars.Day.String())

	stem, ok := saju.DayStem(got)
	require.True(t, ok)
	assert.Equal(t, "병", stem.String())
}

func TestGanjiFromLunar(t *testing.T) {
	adapter := NewLunarCalendar(zap.NewNop())

	got, err := adapter.GanjiFromLunar(context.Background(), 1989, 12, 5, false)

	require.NoError(t, err)
	assert.Regexp(t, ganjiPattern, got)
}

func TestGanjiFromLunar_LeapMonth(t *testing.T) {
	adapter := NewLunarCalendar(zap.NewNop())

	// 2020 carries an intercalary fourth month
	got, err := adapter.GanjiFromLunar(context.Background(), 2020, 4, 1, true)

	require.NoError(t, err)
	assert.Regexp(t, ganjiPattern, got)
}
