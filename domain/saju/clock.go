package saju

import (
	"regexp"
	"strconv"
)

// Bucket is a double-hour (시진) index 0-11. Bucket 0 is 자시, covering
// 23:30-01:29, and buckets map one-to-one onto branches.
type Bucket int

// Valid reports whether the bucket index is inside the twelve-bucket cycle.
func (b Bucket) Valid() bool {
	return b >= 0 && b < BranchCount
}

// Branch returns the earthly branch the bucket indexes.
func (b Bucket) Branch() Branch {
	return Branch(b)
}

// codeBuckets maps discrete even-hour codes to buckets. "24" and "00" are
// both kept as bucket 0; the duplicate mapping is intentional.
var codeBuckets = map[string]Bucket{
	"00": 0, "02": 1, "04": 2, "06": 3, "08": 4, "10": 5,
	"12": 6, "14": 7, "16": 8, "18": 9, "20": 10, "22": 11,
	"24": 0,
}

// clockWindow is a two-hour wall-clock window. Each window runs
// [start, end] inclusive; the first one wraps midnight.
type clockWindow struct {
	startHour, startMin int
	endHour, endMin     int
}

var clockWindows = [BranchCount]clockWindow{
	{23, 30, 1, 29},
	{1, 30, 3, 29},
	{3, 30, 5, 29},
	{5, 30, 7, 29},
	{7, 30, 9, 29},
	{9, 30, 11, 29},
	{11, 30, 13, 29},
	{13, 30, 15, 29},
	{15, 30, 17, 29},
	{17, 30, 19, 29},
	{19, 30, 21, 29},
	{21, 30, 23, 29},
}

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// BucketFromCode resolves a discrete even-hour code ("00", "02", ..., "22",
// "24") to its bucket. Unknown codes report false.
func BucketFromCode(code string) (Bucket, bool) {
	b, ok := codeBuckets[code]
	return b, ok
}

// BucketFromClock resolves a free-form "HH:MM" time to its bucket by
// minute-of-day comparison against the window table. 23:30-23:59 short
// circuits to bucket 0 ahead of the scan, and 00:00-01:29 falls back to
// bucket 0 should the wrapped window ever fail to match. Unparseable input
// reports false.
func BucketFromClock(clock string) (Bucket, bool) {
	m := clockPattern.FindStringSubmatch(clock)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if hour == 23 && minute >= 30 {
		return 0, true
	}

	current := hour*60 + minute
	for i, w := range clockWindows {
		start := (w.startHour*60 + w.startMin) % minutesPerDay
		end := (w.endHour*60 + w.endMin) % minutesPerDay
		if start <= end {
			if start <= current && current <= end {
				return Bucket(i), true
			}
		} else if current >= start || current <= end {
			// window wrapping midnight (자시)
			return Bucket(i), true
		}
	}

	if hour <= 1 && current <= 89 {
		return 0, true
	}
	return 0, false
}

// ResolveBucket resolves a bucket from a discrete code and a free-form
// clock time. A recognized code always wins; the clock is consulted only
// when the code does not resolve.
func ResolveBucket(code, clock string) (Bucket, bool) {
	if b, ok := BucketFromCode(code); ok {
		return b, true
	}
	return BucketFromClock(clock)
}
