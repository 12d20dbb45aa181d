package ports

import "context"

// Calendar is the boundary to the external lunar-calendar library. It owns
// the year/month/day pillar computation and reports it as combined hangul
// pillar text, e.g. "계유년 임오월 병인일". Implementations adapt whatever
// the library's native output is to this one contract.
type Calendar interface {
	// GanjiFromSolar reports the combined pillar text for a solar date.
	GanjiFromSolar(ctx context.Context, year, month, day int) (string, error)

	// GanjiFromLunar reports the combined pillar text for a lunar date.
	// leapMonth marks the date as falling in the year's intercalary month.
	GanjiFromLunar(ctx context.Context, year, month, day int, leapMonth bool) (string, error)
}
