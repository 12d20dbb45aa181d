package saju

// hourStarts maps each day stem to the stem index of 자시, the first double
// hour. The five-elements pairing rule gives paired stems the same start:
// 갑/기 → 갑(0), 을/경 → 병(2), 병/신 → 무(4), 정/임 → 경(6), 무/계 → 임(8).
var hourStarts = [StemCount]int{0, 2, 4, 6, 8, 0, 2, 4, 6, 8}

// HourPillar derives the hour pillar from the day stem and the double-hour
// bucket: the hour stem advances one step per bucket from the day stem's
// start, and the hour branch is the bucket's own branch. An invalid day
// stem or bucket reports false.
func HourPillar(dayStem Stem, bucket Bucket) (Pillar, bool) {
	if !dayStem.Valid() || !bucket.Valid() {
		return Pillar{}, false
	}
	stem := Stem((hourStarts[dayStem] + int(bucket)) % StemCount)
	return NewPillar(stem, bucket.Branch()), true
}
