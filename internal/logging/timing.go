package logging

import (
	"time"
)

// Time runs fn and logs how long it took at debug level.
//
// Example:
//
//	logging.Time("build catalog", func() {
//	    catalog = builder.Build()
//	})
func Time(name string, fn func()) {
	if !IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(name, time.Since(start))
}

// TimeWithResult is Time for functions that return a value.
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	logDuration(name, time.Since(start))
	return result
}

func logDuration(name string, d time.Duration) {
	Get().Debug(name,
		"duration", d.String(),
		"ms", d.Milliseconds(),
	)
}
