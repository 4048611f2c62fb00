package logging

import (
	"time"
)

// Timer measures one operation started with Start.
type Timer struct {
	name  string
	start time.Time
}

// TimeWithResult runs fn, logs its duration at debug level and returns its
// result.
//
//	matches := logging.TimeWithResult("rank catalog", func() []Match {
//	    return Rank(items, query)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	t := Start(name)
	result := fn()
	t.End()
	return result
}

// Start begins a measurement; call End or EndWithCount to log it.
func Start(name string) Timer {
	return Timer{name: name, start: time.Now()}
}

// End logs the time elapsed since Start.
func (t Timer) End(args ...any) {
	if !IsEnabled() {
		return
	}
	d := time.Since(t.start)
	Get().Debug(t.name, append([]any{"duration", d.String(), "ms", d.Milliseconds()}, args...)...)
}

// EndWithCount logs the elapsed time together with an item count.
func (t Timer) EndWithCount(count int) {
	t.End("count", count)
}
