package ds3231

import "time"

// DateTime is the date and time representation the chip registers map to.
//
// It is a plain value with no validation: every field is taken as-is, and no
// cross-field checks are made (February 30 is representable). This mirrors
// the chip, which stores whatever it is given. DayOfWeek counts 0-6 with a
// caller-defined origin; FromTime uses Go's convention of Sunday=0.
type DateTime struct {
	Year      int // absolute year, e.g. 2024
	Month     uint8
	Day       uint8
	Hour      uint8
	Minute    uint8
	Second    uint8
	DayOfWeek uint8
}

// FromTime converts a time.Time into a DateTime, dropping the sub-second
// part. The zone is not converted; pass UTC or local time as desired.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:      t.Year(),
		Month:     uint8(t.Month()),
		Day:       uint8(t.Day()),
		Hour:      uint8(t.Hour()),
		Minute:    uint8(t.Minute()),
		Second:    uint8(t.Second()),
		DayOfWeek: uint8(t.Weekday()),
	}
}

// Time converts the value into a time.Time in UTC. The DayOfWeek field is
// not consulted; time.Time derives the weekday from the date. Note that
// time.Date normalizes out-of-range fields, so a DateTime holding an invalid
// calendar date converts to a different date than its fields suggest.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), int(dt.Day),
		int(dt.Hour), int(dt.Minute), int(dt.Second), 0, time.UTC)
}
