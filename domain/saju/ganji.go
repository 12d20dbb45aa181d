package saju

import (
	"fmt"
	"regexp"
)

// The calendar library reports the date pillars as combined hangul text,
// e.g. "계유년 임오월 병인일". Each pillar is extracted independently.
var (
	yearPillarPattern  = regexp.MustCompile(`([갑을병정무기경신임계][자축인묘진사오미신유술해])년`)
	monthPillarPattern = regexp.MustCompile(`([갑을병정무기경신임계][자축인묘진사오미신유술해])월`)
	dayPillarPattern   = regexp.MustCompile(`([갑을병정무기경신임계][자축인묘진사오미신유술해])일`)
	dayStemPattern     = regexp.MustCompile(`([갑을병정무기경신임계])[^\s]*일`)
)

// DatePillars holds the year, month and day pillars parsed from combined
// pillar text.
type DatePillars struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
}

// ParseGanji extracts the year, month and day pillars from combined pillar
// text. A missing pillar fails the parse; that indicates the calendar
// library emitted an output format this parser does not recognize.
func ParseGanji(text string) (DatePillars, error) {
	year, ok := findPillar(yearPillarPattern, text)
	if !ok {
		return DatePillars{}, fmt.Errorf("no year pillar in %q", text)
	}
	month, ok := findPillar(monthPillarPattern, text)
	if !ok {
		return DatePillars{}, fmt.Errorf("no month pillar in %q", text)
	}
	day, ok := findPillar(dayPillarPattern, text)
	if !ok {
		return DatePillars{}, fmt.Errorf("no day pillar in %q", text)
	}
	return DatePillars{Year: year, Month: month, Day: day}, nil
}

// DayStem extracts the bare day stem from combined pillar text. It matches
// independently of ParseGanji so the hour pillar can still be derived from
// looser day-pillar spellings.
func DayStem(text string) (Stem, bool) {
	m := dayStemPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return StemOf(m[1])
}

func findPillar(pattern *regexp.Regexp, text string) (Pillar, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return Pillar{}, false
	}
	glyphs := []rune(m[1])
	stem, ok := StemOf(string(glyphs[0]))
	if !ok {
		return Pillar{}, false
	}
	branch, ok := BranchOf(string(glyphs[1]))
	if !ok {
		return Pillar{}, false
	}
	return NewPillar(stem, branch), true
}
