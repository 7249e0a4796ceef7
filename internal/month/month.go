package month

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month identifies one ledger file, e.g. "10-2024".
type Month struct {
	Year  int
	Month time.Month
}

// Of returns the month containing t.
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns the "MM-YYYY" form used as the file name.
func (m Month) String() string {
	return fmt.Sprintf("%02d-%04d", int(m.Month), m.Year)
}

// Before reports whether m comes earlier in the calendar than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Parse reads "MM-YYYY".
func Parse(s string) (Month, error) {
	mm, yyyy, ok := strings.Cut(s, "-")
	if !ok || len(mm) != 2 || len(yyyy) != 4 {
		return Month{}, fmt.Errorf("invalid month format: %q", s)
	}

	m, err := strconv.Atoi(mm)
	if err != nil || m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month in %q", s)
	}

	y, err := strconv.Atoi(yyyy)
	if err != nil {
		return Month{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}

	return Month{Year: y, Month: time.Month(m)}, nil
}
