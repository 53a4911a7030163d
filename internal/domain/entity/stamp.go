package entity

import (
	"time"

	"relay/internal/errors"
)

// StampLayout is the textual timestamp format used by the storage layer and
// the wire protocol. Minute precision is all the game rules ever need.
const StampLayout = "2006-01-02-15-04"

// FormatStamp renders t in the textual stamp layout.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ParseStamp parses a textual stamp in the server's local time zone.
func ParseStamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(StampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse stamp %q", s)
	}

	return t, nil
}
