package ds3231

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestFromTime(t *testing.T) {
	c := qt.New(t)
	dt := FromTime(time.Date(2024, time.November, 28, 14, 37, 58, 0, time.UTC))
	c.Assert(dt, qt.Equals, DateTime{
		Year:      2024,
		Month:     11,
		Day:       28,
		Hour:      14,
		Minute:    37,
		Second:    58,
		DayOfWeek: 4,
	})
}

func TestFromTimeDayOfWeek(t *testing.T) {
	c := qt.New(t)
	// 2024-11-24 was a Sunday; the week counts up from there.
	for i := 0; i < 7; i++ {
		day := time.Date(2024, time.November, 24+i, 0, 0, 0, 0, time.UTC)
		c.Assert(FromTime(day).DayOfWeek, qt.Equals, uint8(i), qt.Commentf("%s", day.Weekday()))
	}
}

func TestDateTimeTime(t *testing.T) {
	c := qt.New(t)
	dt := DateTime{Year: 2024, Month: 11, Day: 28, Hour: 14, Minute: 37, Second: 58, DayOfWeek: 4}
	c.Assert(dt.Time(), qt.Equals, time.Date(2024, time.November, 28, 14, 37, 58, 0, time.UTC))
}

func TestDateTimeTimeNormalizes(t *testing.T) {
	c := qt.New(t)
	// A chip holding an impossible date maps to the equivalent real one.
	dt := DateTime{Year: 2023, Month: 2, Day: 30}
	c.Assert(dt.Time(), qt.Equals, time.Date(2023, time.March, 2, 0, 0, 0, 0, time.UTC))
}

func TestTimeRoundTrip(t *testing.T) {
	c := qt.New(t)
	orig := time.Date(2031, time.May, 3, 6, 7, 8, 0, time.UTC)
	c.Assert(FromTime(orig).Time(), qt.Equals, orig)
}
