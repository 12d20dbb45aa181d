package calendar

import (
	"context"
	"fmt"
	"strings"

	lunargo "github.com/6tail/lunar-go/calendar"
	"go.uber.org/zap"
)

// The library reports ganzhi in Chinese glyphs; the service speaks hangul.
var (
	stemHangul = map[rune]rune{
		'甲': '갑', '乙': '을', '丙': '병', '丁': '정', '戊': '무',
		'己': '기', '庚': '경', '辛': '신', '壬': '임', '癸': '계',
	}
	branchHangul = map[rune]rune{
		'子': '자', '丑': '축', '寅': '인', '卯': '묘', '辰': '진', '巳': '사',
		'午': '오', '未': '미', '申': '신', '酉': '유', '戌': '술', '亥': '해',
	}
)

// LunarCalendar adapts the lunar-go library to the Calendar port. It
// renders the library's year/month/day ganzhi as the combined hangul
// pillar text the rest of the system consumes.
type LunarCalendar struct {
	logger *zap.Logger
}

// NewLunarCalendar creates a new lunar-go backed calendar adapter
func NewLunarCalendar(logger *zap.Logger) *LunarCalendar {
	return &LunarCalendar{logger: logger}
}

// GanjiFromSolar reports the combined pillar text for a solar date.
func (c *LunarCalendar) GanjiFromSolar(ctx context.Context, year, month, day int) (text string, err error) {
	defer c.recoverFault("solar", &err)
	lunar := lunargo.NewSolarFromYmd(year, month, day).GetLunar()
	return c.render(lunar), nil
}

// GanjiFromLunar reports the combined pillar text for a lunar date.
func (c *LunarCalendar) GanjiFromLunar(ctx context.Context, year, month, day int, leapMonth bool) (text string, err error) {
	defer c.recoverFault("lunar", &err)
	// lunar-go marks intercalary months with a negative month number
	m := month
	if leapMonth {
		m = -m
	}
	lunar := lunargo.NewLunarFromYmd(year, m, day)
	return c.render(lunar), nil
}

func (c *LunarCalendar) render(lunar *lunargo.Lunar) string {
	return fmt.Sprintf("%s년 %s월 %s일",
		toHangul(lunar.GetYearInGanZhi()),
		toHangul(lunar.GetMonthInGanZhi()),
		toHangul(lunar.GetDayInGanZhi()),
	)
}

// recoverFault converts library panics on out-of-range or nonexistent
// dates into errors at the boundary.
func (c *LunarCalendar) recoverFault(op string, err *error) {
	if r := recover(); r != nil {
		c.logger.Warn("calendar library fault",
			zap.String("conversion", op),
			zap.Any("fault", r),
		)
		*err = fmt.Errorf("calendar %s conversion failed: %v", op, r)
	}
}

func toHangul(ganzhi string) string {
	var b strings.Builder
	for _, r := range ganzhi {
		switch {
		case stemHangul[r] != 0:
			b.WriteRune(stemHangul[r])
		case branchHangul[r] != 0:
			b.WriteRune(branchHangul[r])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
