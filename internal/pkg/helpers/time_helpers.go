package helpers

import (
	"time"
)

// DateLayout is the calendar-date format notices are stored with.
const DateLayout = "2006-01-02"

// FormatLongDate renders a stored ISO date in the long display form used on
// the public pages, e.g. "2023-07-15" becomes "July 15, 2023". Values that do
// not parse are returned unchanged.
func FormatLongDate(value string) string {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return value
	}
	return t.Format("January 2, 2006")
}
