package util

import "time"

// Clock is a process-wide monotonic clock, grounded on the same
// time.Now()/time.Since pairing PerfStats uses. spec.md §5 calls for a
// "monotonic clock ... process-wide singleton with ... now() -> u32 ms
// accessor[], initialised at program start".
type Clock struct {
	start time.Time
}

var processClock = Clock{start: time.Now()}

// Now returns milliseconds elapsed since the process clock was
// initialised, truncated to uint32 (spec.md §5).
func Now() uint32 {
	return uint32(time.Since(processClock.start).Milliseconds())
}
