package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeLayout is the canonical auction timestamp format. All five tables
// store times in this form, and string comparison over it orders the
// same way as chronological comparison.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp is an auction time value. It stores as TimeLayout text so
// queries can compare it directly against column values regardless of
// the database engine.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses a TimeLayout string into a Timestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return Timestamp{Time: t}, nil
}

// NewTimestamp truncates t to second precision in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second)}
}

// String returns the TimeLayout representation.
func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t.Time.IsZero()
}

// Value implements driver.Valuer, writing the TimeLayout string.
func (t Timestamp) Value() (driver.Value, error) {
	return t.Format(TimeLayout), nil
}

// Scan implements sql.Scanner. Accepts TEXT columns in TimeLayout as
// well as native time values from engines with real datetime types.
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}
