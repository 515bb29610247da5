package ds3231

import "errors"

var errYearRange = errors.New("year outside the range the chip can store")

const (
	centuryFlag       = 1 << 7 // in the month register
	alarmDisableBit   = 1 << 7 // per-field "don't care" bit in the alarm registers
	alarmDayOfWeekBit = 1 << 6 // match the day of the week instead of the day of the month
)

// decodeDateTime unpacks the seven-byte date/time register block. Control and
// reserved bits are masked away before the BCD conversion; the digits
// themselves are not validated, so garbage registers decode to garbage
// values, never to an error.
func decodeDateTime(buf *[7]byte, yearBase int) DateTime {
	year := int(bcdToDec(buf[6])) + yearBase
	if buf[5]&centuryFlag != 0 {
		year += 100
	}
	return DateTime{
		Year:      year,
		Month:     bcdToDec(buf[5] & 0x1F),
		Day:       bcdToDec(buf[4] & 0x3F),
		Hour:      bcdToDec(buf[2] & 0x3F),
		Minute:    bcdToDec(buf[1] & 0x7F),
		Second:    bcdToDec(buf[0] & 0x7F),
		DayOfWeek: buf[3] & 0x07,
	}
}

// encodeDateTime packs a date/time into the seven-byte register block. The
// year must lie in [yearBase, yearBase+200); that is the only precondition
// checked anywhere in the codec. BCD encoding of in-range calendar values
// never touches the registers' control bits, so no masking is needed here.
func encodeDateTime(dt DateTime, yearBase int) ([7]byte, error) {
	var buf [7]byte
	if dt.Year < yearBase || dt.Year >= yearBase+200 {
		return buf, errYearRange
	}
	buf[0] = decToBcd(dt.Second)
	buf[1] = decToBcd(dt.Minute)
	buf[2] = decToBcd(dt.Hour)
	buf[3] = dt.DayOfWeek
	buf[4] = decToBcd(dt.Day)
	buf[5] = decToBcd(dt.Month)
	if dt.Year >= yearBase+100 {
		buf[5] |= centuryFlag
	}
	buf[6] = decToBcd(uint8(dt.Year % 100))
	return buf, nil
}

// encodeAlarm packs an alarm time into the four-byte register block. The low
// four mode bits map to the per-field disable bits of seconds, minutes,
// hours and day; a set bit excludes the field from the comparison. The day
// byte carries either the day of the month or, for the day-of-week mode, the
// day of the week plus one with the selector bit set. Alarm 2 has no seconds
// register and uses only the last three bytes.
func encodeAlarm(mode AlarmMode, dt DateTime) [4]byte {
	var buf [4]byte
	buf[0] = decToBcd(dt.Second)
	buf[1] = decToBcd(dt.Minute)
	buf[2] = decToBcd(dt.Hour)
	if mode == AlarmModeDayHoursMinutesSeconds {
		buf[3] = decToBcd(dt.DayOfWeek+1) | alarmDayOfWeekBit
	} else {
		buf[3] = decToBcd(dt.Day)
	}
	if mode&(1<<0) != 0 {
		buf[0] |= alarmDisableBit
	}
	if mode&(1<<1) != 0 {
		buf[1] |= alarmDisableBit
	}
	if mode&(1<<2) != 0 {
		buf[2] |= alarmDisableBit
	}
	if mode&(1<<3) != 0 {
		buf[3] |= alarmDisableBit
	}
	return buf
}

// decodeTemperature converts the two temperature registers into degrees
// Celsius. The fraction is stored as an unsigned quarter-degree magnitude in
// the top two bits of the low register, so its sign has to be taken from the
// integer part.
func decodeTemperature(high, low uint8) float32 {
	t := float32(int8(high))
	frac := float32(low>>6) * 0.25
	if t < 0 {
		return t - frac
	}
	return t + frac
}

// decToBcd converts a decimal value to BCD.
func decToBcd(dec uint8) uint8 {
	return dec + 6*(dec/10)
}

// bcdToDec converts a BCD value to decimal.
func bcdToDec(bcd uint8) uint8 {
	return bcd - 6*(bcd>>4)
}
