package implementation

import "time"

// storedTime stamps zero times with now and drops precision below what
// Postgres keeps, so the value echoed on create matches later reads.
func storedTime(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Truncate(time.Microsecond)
}
