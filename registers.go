package ds3231

// Address is the I2C address of the DS3231. It is fixed by the chip and not
// configurable via address pins.
const Address = 0x68

// Register map. All 19 registers are readable and writable except the
// temperature registers, which the chip updates on every conversion.
const (
	Seconds         = 0x00 // Seconds, 00-59 BCD
	Minutes         = 0x01 // Minutes, 00-59 BCD
	Hours           = 0x02 // Hours, BCD, bit 6 selects 12-hour mode
	DayOfWeek       = 0x03 // Day of the week, three bits, counting origin is up to the user
	Day             = 0x04 // Day of the month, 01-31 BCD
	MonthCentury    = 0x05 // Month 01-12 BCD, bit 7 is the century flag
	Year            = 0x06 // Year, 00-99 BCD
	Alarm1Seconds   = 0x07 // Alarm 1 seconds, bit 7 is the match-disable bit
	Alarm1Minutes   = 0x08 // Alarm 1 minutes, bit 7 is the match-disable bit
	Alarm1Hours     = 0x09 // Alarm 1 hours, bit 7 is the match-disable bit
	Alarm1DayDate   = 0x0A // Alarm 1 day/date, bit 6 selects day-of-week mode
	Alarm2Minutes   = 0x0B // Alarm 2 minutes, bit 7 is the match-disable bit
	Alarm2Hours     = 0x0C // Alarm 2 hours, bit 7 is the match-disable bit
	Alarm2DayDate   = 0x0D // Alarm 2 day/date, bit 6 selects day-of-week mode
	Control         = 0x0E // Control register
	Status          = 0x0F // Status register
	AgingOffset     = 0x10 // Crystal aging trim, signed
	TemperatureHigh = 0x11 // Temperature, integer part, signed
	TemperatureLow  = 0x12 // Temperature, fraction in the top two bits
)

// RegisterCount is the number of registers in the chip.
const RegisterCount = 0x13

// Control register flags.
const (
	A1IE  = 1 << 0 // Alarm 1 interrupt enable
	A2IE  = 1 << 1 // Alarm 2 interrupt enable
	INTCN = 1 << 2 // Interrupt control, routes the alarms to the INT/SQW pin
	RS1   = 1 << 3 // Square-wave rate select, bit 1
	RS2   = 1 << 4 // Square-wave rate select, bit 2
	CONV  = 1 << 5 // Start a temperature conversion
	BBSQW = 1 << 6 // Battery-backed square-wave enable
	EOSC  = 1 << 7 // Oscillator enable, active low
)

// Status register flags.
const (
	A1F     = 1 << 0 // Alarm 1 fired
	A2F     = 1 << 1 // Alarm 2 fired
	BSY     = 1 << 2 // Busy with a temperature conversion
	EN32kHz = 1 << 3 // Enable the 32.768 kHz output
	OSF     = 1 << 7 // Oscillator was stopped, time is unreliable
)
