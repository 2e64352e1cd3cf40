// Package dashfeed converts the project-tracking workbook into the JSON
// documents the dashboard reads.
package dashfeed

import "time"

// DefaultTimezone controls the lastUpdated stamp rendered into every output
// document. It matches the project office.
const DefaultTimezone = "Australia/Perth"

// Options configures a pipeline run.
type Options struct {
	// Timezone is an IANA zone name for the lastUpdated stamp.
	// Empty means DefaultTimezone.
	Timezone string
	// Now overrides the clock. If nil, time.Now is used. Tests use it to
	// pin the generation timestamp.
	Now func() time.Time
}

// DefaultOptions returns options matching the original dashboard deployment.
func DefaultOptions() Options {
	return Options{Timezone: DefaultTimezone}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) location() (*time.Location, error) {
	tz := o.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}
