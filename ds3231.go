// Package ds3231 implements a driver for the DS3231, an I2C real-time clock
// with two alarms, a configurable interrupt/square-wave output pin and an
// on-chip temperature sensor.
//
// The chip stores the year as two BCD digits plus a century bit. The driver
// maps this to absolute years using a year base, 2000 unless configured
// otherwise: with base B the chip holds dates in [B, B+200).
//
// Every operation performs one or more blocking bus transactions and keeps
// no local copy of chip state. Operations that need more than one
// transaction are not atomic; a failure in between leaves the chip in
// whatever state the completed transactions produced. A Device is not safe
// for concurrent use, access to the shared bus must be serialized by the
// caller.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/DS3231.pdf
package ds3231

import (
	"fmt"
	"io"
	"time"

	"tinygo.org/x/drivers"
)

// Device wraps an I2C connection to a DS3231 chip.
type Device struct {
	bus      drivers.I2C
	Address  uint8
	yearBase int
}

// Config holds the configuration of a Device. Zero values select the
// defaults: the chip's fixed bus address and a year base of 2000.
type Config struct {
	Address  uint8
	YearBase int
}

// AlarmMode selects which date/time fields take part in an alarm comparison.
//
// AlarmModeOncePerSecond and AlarmModeSecondsMatch are only valid for
// alarm 1. AlarmModeOncePerMinute is the alarm 2 reading of the same bits:
// alarm 2 has no seconds register and triggers when the seconds roll over to
// 00. All other modes are valid for both alarms, with alarm 2 ignoring the
// seconds part.
//
// For AlarmModeDayHoursMinutesSeconds the DayOfWeek field of the alarm time
// is used instead of Day.
type AlarmMode uint8

const (
	AlarmModeOncePerSecond           AlarmMode = 0b01111               // every second (alarm 1 only)
	AlarmModeSecondsMatch            AlarmMode = 0b01110               // when the seconds match (alarm 1 only)
	AlarmModeOncePerMinute           AlarmMode = AlarmModeSecondsMatch // every minute (alarm 2)
	AlarmModeMinutesSeconds          AlarmMode = 0b01100               // when minutes and seconds match
	AlarmModeHoursMinutesSeconds     AlarmMode = 0b01000               // when hours, minutes and seconds match
	AlarmModeDateHoursMinutesSeconds AlarmMode = 0b00000               // when the day of the month and the time match
	AlarmModeDayHoursMinutesSeconds  AlarmMode = 0b10000               // when the day of the week and the time match
)

// IntPinMode selects the function of the INT/SQW pin.
type IntPinMode uint8

const (
	IntPinDisabled         IntPinMode = 0b00000 // the pin is disabled
	IntPinAlarm1           IntPinMode = 0b00101 // driven low when alarm 1 matches
	IntPinAlarm2           IntPinMode = 0b00101 // driven low when alarm 2 matches
	IntPinAlarm12          IntPinMode = 0b00101 // driven low when alarm 1 or 2 matches
	IntPinSquareWave1Hz    IntPinMode = 0b00000 // 1 Hz square wave
	IntPinSquareWave1024Hz IntPinMode = 0b01000 // 1.024 kHz square wave
	IntPinSquareWave4096Hz IntPinMode = 0b10000 // 4.096 kHz square wave
	IntPinSquareWave8192Hz IntPinMode = 0b11000 // 8.192 kHz square wave
)

// New creates a new DS3231 driver on the given preconfigured I2C bus with
// the default configuration. This only creates the Device, it does not touch
// the chip.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:      bus,
		Address:  Address,
		yearBase: 2000,
	}
}

// Configure applies the configuration. It performs no bus traffic. The year
// base is fixed for the lifetime of the Device after this call.
func (d *Device) Configure(cfg Config) {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	if cfg.YearBase != 0 {
		d.yearBase = cfg.YearBase
	}
}

// ReadDateTime reads the current date and time in one bus transaction.
//
// The register contents are not validated: a chip holding garbage yields
// garbage field values, not an error. Errors are reported for failed bus
// transactions only.
func (d *Device) ReadDateTime() (DateTime, error) {
	var buf [7]byte
	if err := d.bus.ReadRegister(d.Address, Seconds, buf[:]); err != nil {
		return DateTime{}, err
	}
	return decodeDateTime(&buf, d.yearBase), nil
}

// SetDateTime writes a new date and time in one bus transaction. The year
// must lie in [yearBase, yearBase+200); all other fields are written
// unchecked.
func (d *Device) SetDateTime(dt DateTime) error {
	buf, err := encodeDateTime(dt, d.yearBase)
	if err != nil {
		return err
	}
	return d.bus.WriteRegister(d.Address, Seconds, buf[:])
}

// Now reads the current date and time as a time.Time in UTC.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.ReadDateTime()
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(), nil
}

// Set writes a time.Time to the chip. See SetDateTime.
func (d *Device) Set(t time.Time) error {
	return d.SetDateTime(FromTime(t))
}

// IsRunning reports whether the clock is keeping time. It returns false if
// the oscillator-stopped flag is set, regardless of the control register:
// that flag means the chip lost power at some point and the stored time is
// unreliable. Only with the flag clear is the oscillator enable bit
// consulted; the bit is active low.
//
// After a reported false, initialize the chip with SetDateTime followed by
// EnableOscillator.
func (d *Device) IsRunning() (bool, error) {
	stopped, err := d.testBit(Status, OSF)
	if err != nil {
		return false, err
	}
	if stopped {
		return false, nil
	}
	disabled, err := d.testBit(Control, EOSC)
	if err != nil {
		return false, err
	}
	return !disabled, nil
}

// EnableOscillator starts the oscillator and then clears the
// oscillator-stopped flag, in that order: the oscillator has to run before
// the flag is reset, or the chip could set it again right away. The two
// steps are separate bus transactions; if the second fails, the flag keeps
// signaling a stopped oscillator even though it is running again.
func (d *Device) EnableOscillator() error {
	if err := d.changeBit(Control, EOSC, false); err != nil {
		return err
	}
	return d.changeBit(Status, OSF, false)
}

// SetAlarm1 configures the first alarm in one bus transaction. Seconds,
// minutes, hours and either the day of the month or the day of the week are
// taken from dt as selected by the mode.
func (d *Device) SetAlarm1(mode AlarmMode, dt DateTime) error {
	buf := encodeAlarm(mode, dt)
	return d.bus.WriteRegister(d.Address, Alarm1Seconds, buf[:])
}

// SetAlarm2 configures the second alarm in one bus transaction. Alarm 2 has
// no seconds register; it matches when the seconds are 00.
func (d *Device) SetAlarm2(mode AlarmMode, dt DateTime) error {
	buf := encodeAlarm(mode, dt)
	return d.bus.WriteRegister(d.Address, Alarm2Minutes, buf[1:])
}

// IsAlarm1Set reports whether alarm 1 has fired, and acknowledges it: a set
// flag is cleared before returning. The clear is best effort; the reported
// state stands even if the acknowledging transaction fails.
func (d *Device) IsAlarm1Set() (bool, error) {
	return d.readAlarmFlag(A1F)
}

// IsAlarm2Set reports whether alarm 2 has fired, and acknowledges it. See
// IsAlarm1Set.
func (d *Device) IsAlarm2Set() (bool, error) {
	return d.readAlarmFlag(A2F)
}

func (d *Device) readAlarmFlag(mask uint8) (bool, error) {
	set, err := d.testBit(Status, mask)
	if err != nil {
		return false, err
	}
	if set {
		_ = d.changeBit(Status, mask, false) // best effort
	}
	return set, nil
}

// SetIntPinMode configures the INT/SQW pin. The mode occupies the lower five
// bits of the control register; the upper three bits are left untouched.
func (d *Device) SetIntPinMode(mode IntPinMode) error {
	return d.writeBits(Control, 0b00011111, uint8(mode))
}

// Temperature reads the on-chip temperature sensor in degrees Celsius. The
// chip measures in steps of 0.25°C.
func (d *Device) Temperature() (float32, error) {
	var buf [2]byte
	if err := d.bus.ReadRegister(d.Address, TemperatureHigh, buf[:]); err != nil {
		return 0, err
	}
	return decodeTemperature(buf[0], buf[1]), nil
}

// AgingOffset reads the crystal aging trim value.
func (d *Device) AgingOffset() (int8, error) {
	var buf [1]byte
	if err := d.bus.ReadRegister(d.Address, AgingOffset, buf[:]); err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

// SetAgingOffset adjusts the crystal aging trim. Positive values slow the
// oscillator down, negative values speed it up. The new value takes effect
// with the next temperature conversion.
func (d *Device) SetAgingOffset(offset int8) error {
	buf := [1]byte{uint8(offset)}
	return d.bus.WriteRegister(d.Address, AgingOffset, buf[:])
}

// Enable32kHz switches the 32.768 kHz output pin on or off.
func (d *Device) Enable32kHz(enable bool) error {
	return d.changeBit(Status, EN32kHz, enable)
}

// DumpRegisters reads all registers in one transaction and writes one
// index:hex:binary line per register to w, as a debugging aid.
func (d *Device) DumpRegisters(w io.Writer) error {
	var buf [RegisterCount]byte
	if err := d.bus.ReadRegister(d.Address, Seconds, buf[:]); err != nil {
		return err
	}
	for i, value := range buf {
		if _, err := fmt.Fprintf(w, "%02x:%02x:%08b\n", i, value, value); err != nil {
			return err
		}
	}
	return nil
}

// testBit reads a register and reports whether a masked bit is set.
func (d *Device) testBit(reg, mask uint8) (bool, error) {
	var buf [1]byte
	if err := d.bus.ReadRegister(d.Address, reg, buf[:]); err != nil {
		return false, err
	}
	return buf[0]&mask != 0, nil
}

// changeBit sets or clears the masked bits of a register in a
// read-modify-write cycle.
func (d *Device) changeBit(reg, mask uint8, set bool) error {
	var buf [1]byte
	if err := d.bus.ReadRegister(d.Address, reg, buf[:]); err != nil {
		return err
	}
	if set {
		buf[0] |= mask
	} else {
		buf[0] &^= mask
	}
	return d.bus.WriteRegister(d.Address, reg, buf[:])
}

// writeBits replaces the masked field of a register, leaving the remaining
// bits untouched.
func (d *Device) writeBits(reg, mask, value uint8) error {
	var buf [1]byte
	if err := d.bus.ReadRegister(d.Address, reg, buf[:]); err != nil {
		return err
	}
	buf[0] = (buf[0] &^ mask) | (value & mask)
	return d.bus.WriteRegister(d.Address, reg, buf[:])
}
