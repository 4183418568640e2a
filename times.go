package fvp

import (
	"fmt"
	"time"
)

// DateRange returns the strictly increasing sequence of timestamps from start
// to end inclusive at intervalSec [s] spacing.
func DateRange(start, end time.Time, intervalSec float64) ([]time.Time, error) {
	if intervalSec <= 0. {
		return nil, fmt.Errorf("%w: interval %f", ErrInvalidConfiguration, intervalSec)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %v not after start %v", ErrInvalidConfiguration, end, start)
	}
	ts := make([]time.Time, 0, int(end.Sub(start).Seconds()/intervalSec)+1)
	for t := start; !t.After(end); t = t.Add(time.Duration(intervalSec * float64(time.Second))) {
		ts = append(ts, t)
	}
	return ts, nil
}

// dayDate keys a timestamp by its UTC midnight, matching the date keys
// produced by mmio's csv date readers.
func dayDate(t time.Time) int64 {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}
