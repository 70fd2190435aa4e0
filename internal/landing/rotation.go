package landing

import "time"

// StatRotator picks the highlighted hero stat as a function of time.
type StatRotator struct {
	start    time.Time
	interval time.Duration
	count    int
}

// Index returns the entry highlighted at now. Consecutive intervals visit
// every entry in order.
func (r *StatRotator) Index(now time.Time) int {
	if r.count <= 0 {
		return 0
	}
	if r.interval <= 0 {
		return 0
	}
	elapsed := now.Sub(r.start)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed/r.interval) % r.count
}

func NewStatRotator(start time.Time, interval time.Duration, count int) *StatRotator {
	return &StatRotator{start: start, interval: interval, count: count}
}
