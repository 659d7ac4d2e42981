// Package ethiopic converts dates between the Ethiopian and Gregorian
// calendars, including the pre-1582 Julian alignment and the October 1582
// calendar gap. Conversions are pure functions over value types: no state,
// no I/O, safe for concurrent use.
//
// The rotation tables and offset constants encode a specific historical
// epoch alignment and are carried over unchanged; re-deriving them would
// change behavior for early years.
package ethiopic

// EthiopianDate is a date in the Ethiopian calendar: 12 months of 30 days
// plus Pagume, the 5- or 6-day thirteenth month.
type EthiopianDate struct {
	Year  int
	Month int
	Day   int
}

// GregorianDate is a date in the Gregorian calendar.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

// IsEthiopianLeapYear reports whether Pagume has six days in the given
// Ethiopian year.
func IsEthiopianLeapYear(year int) bool {
	return floorMod(year-1, 4) == 3
}

// IsGregorianLeapYear reports whether the given Gregorian year is a leap year.
func IsGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// newYearOffset returns the day of September on which the Ethiopian New Year
// falls for the given Ethiopian year. Both conversion directions pivot on
// this value to align month boundaries.
func newYearOffset(year int) int {
	offset := year/100 - year/400 - 4
	if floorMod(year-1, 4) == 3 {
		offset++
	}
	return offset
}

// floorMod returns the least non-negative remainder of a modulo b. The
// provisional Ethiopian year in ToEthiopian can be zero or negative for very
// early Gregorian inputs, where Go's truncated % would flip sign.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ToGregorian converts a valid Ethiopian date to its Gregorian equivalent.
// Invalid input fails with ErrInvalidComponent or ErrDayOutOfRange before
// any arithmetic runs.
func ToGregorian(year, month, day int) (GregorianDate, error) {
	if err := ValidateEthiopian(year, month, day); err != nil {
		return GregorianDate{}, err
	}

	offset := newYearOffset(year)
	gregorianYear := year + 7

	// Month lengths rotated to start at the Ethiopian New Year. Slot 6 is
	// the February slot; the Ethiopian year spans two Gregorian years, so
	// it widens when the *following* Gregorian year is a leap year.
	monthDays := [14]int{0, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30}
	if IsGregorianLeapYear(gregorianYear + 1) {
		monthDays[6] = 29
	}

	until := (month-1)*30 + day
	if until <= 37 && year <= 1575 {
		// The Julian calendar was still in effect this early: a fixed
		// 28-day correction, and slot 0 absorbs a 31-day August.
		until += 28
		monthDays[0] = 31
	} else {
		until += offset - 1
	}
	if IsEthiopianLeapYear(year) {
		until++
	}

	slot := 0
	gregorianDay := until
	for i := 0; i < len(monthDays); i++ {
		if until <= monthDays[i] {
			slot = i
			gregorianDay = until
			break
		}
		slot = i
		until -= monthDays[i]
	}

	// Slots past April belong to the next Gregorian year.
	if slot > 4 {
		gregorianYear++
	}

	slotToMonth := [14]int{8, 9, 10, 11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	return GregorianDate{
		Year:  gregorianYear,
		Month: slotToMonth[slot],
		Day:   gregorianDay,
	}, nil
}

// ToEthiopian converts a valid Gregorian date to its Ethiopian equivalent.
// Invalid input fails with ErrInvalidComponent, ErrDayOutOfRange or
// ErrCalendarGap before any arithmetic runs.
func ToEthiopian(year, month, day int) (EthiopianDate, error) {
	if err := ValidateGregorian(year, month, day); err != nil {
		return EthiopianDate{}, err
	}

	gregorianDays := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if IsGregorianLeapYear(year) {
		gregorianDays[2] = 29
	}

	// Ethiopian month lengths rotated to the Gregorian year start. Slot 10
	// is Pagume; slots 1 and 2 are reshaped below depending on which side
	// of the 1582 reform the date falls.
	ethiopianDays := [15]int{0, 30, 30, 30, 30, 30, 30, 30, 30, 30, 5, 30, 30, 30, 30}

	ethiopianYear := year - 8
	if IsEthiopianLeapYear(ethiopianYear) {
		ethiopianDays[10] = 6
	} else {
		ethiopianDays[10] = 5
	}

	offset := newYearOffset(year - 8)

	// Day of the Gregorian year.
	until := 0
	for i := 1; i < month; i++ {
		until += gregorianDays[i]
	}
	until += day

	// tahissas marks where the Ethiopian month of Tahsas ends relative to
	// the Gregorian year start.
	tahissas := 25
	if floorMod(ethiopianYear, 4) == 0 {
		tahissas = 26
	}

	switch {
	case year < 1582:
		ethiopianDays[1] = 0
		ethiopianDays[2] = tahissas
	case until <= 277 && year == 1582:
		ethiopianDays[1] = 0
		ethiopianDays[2] = tahissas
	default:
		tahissas = offset - 3
		ethiopianDays[1] = tahissas
	}

	slot := 0
	ethiopianDay := until
	for m := 1; m < len(ethiopianDays); m++ {
		slot = m
		if until <= ethiopianDays[m] {
			if m == 1 || ethiopianDays[m] == 0 {
				// Remainder before the rotated table proper starts.
				ethiopianDay = until + (30 - tahissas)
			} else {
				ethiopianDay = until
			}
			break
		}
		until -= ethiopianDays[m]
	}

	// Slots past Pagume belong to the next Ethiopian year.
	if slot > 10 {
		ethiopianYear++
	}

	slotToMonth := [15]int{0, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 1, 2, 3, 4}

	return EthiopianDate{
		Year:  ethiopianYear,
		Month: slotToMonth[slot],
		Day:   ethiopianDay,
	}, nil
}
