package types

import (
	"fmt"
	"time"
)

// Wire date layouts accepted by the API. Onboarding forms submit month
// precision; the serializer may echo full dates back.
const (
	DateLayoutMonth = "2006-01"
	DateLayoutFull  = "2006-01-02"
)

// ParseWireDate parses a date string in either wire layout.
func ParseWireDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayoutMonth, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayoutFull, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM or YYYY-MM-DD)", s)
	}
	return t, nil
}

// checkDateRange enforces the date sanity rules shared by experience and
// education entries: start must parse, end (when present on a finished
// entry) must parse and not precede start. A current entry ignores any
// end date because the submit path clears it.
func checkDateRange(start, end string, isCurrent bool) error {
	startAt, err := ParseWireDate(start)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	if isCurrent || end == "" {
		return nil
	}
	endAt, err := ParseWireDate(end)
	if err != nil {
		return fmt.Errorf("end_date: %w", err)
	}
	if endAt.Before(startAt) {
		return fmt.Errorf("end_date %s precedes start_date %s", end, start)
	}
	return nil
}
