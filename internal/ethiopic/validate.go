package ethiopic

import (
	"errors"
	"fmt"
)

// Every validation failure wraps exactly one of these sentinels; callers
// classify with errors.Is and render err.Error() to the user.
var (
	// ErrInvalidComponent marks a non-positive year/month/day or a month
	// outside the calendar's range.
	ErrInvalidComponent = errors.New("invalid date component")

	// ErrDayOutOfRange marks a day past the maximum for its month/year
	// combination.
	ErrDayOutOfRange = errors.New("day out of range")

	// ErrCalendarGap marks one of the ten Gregorian dates (October 5-14,
	// 1582) skipped during the Julian-to-Gregorian transition.
	ErrCalendarGap = errors.New("nonexistent calendar date")
)

var gregorianMonthNames = [13]string{
	"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ValidateEthiopian checks an Ethiopian (year, month, day) triple. It is a
// pure predicate: nil for a representable date, otherwise an error wrapping
// one of the package sentinels with a diagnostic message.
func ValidateEthiopian(year, month, day int) error {
	if year <= 0 {
		return fmt.Errorf("%w: Ethiopian year %d must be a positive integer", ErrInvalidComponent, year)
	}
	if month <= 0 {
		return fmt.Errorf("%w: Ethiopian month %d must be between 1 and 13", ErrInvalidComponent, month)
	}
	if day <= 0 {
		return fmt.Errorf("%w: Ethiopian day %d must be a positive integer", ErrInvalidComponent, day)
	}
	if month > 13 {
		return fmt.Errorf("%w: Ethiopian month %d does not exist, the Ethiopian calendar has only 13 months", ErrInvalidComponent, month)
	}

	if month <= 12 {
		if day > 30 {
			return fmt.Errorf("%w: Ethiopian month %d has only 30 days, day %d was provided", ErrDayOutOfRange, month, day)
		}
		return nil
	}

	// Pagume has 5 days, or 6 in an Ethiopian leap year.
	maxDays := 5
	leapStatus := "non-leap year"
	if IsEthiopianLeapYear(year) {
		maxDays = 6
		leapStatus = "leap year"
	}
	if day > maxDays {
		return fmt.Errorf("%w: Pagume (month 13) has only %d days in %s %d, day %d was provided",
			ErrDayOutOfRange, maxDays, leapStatus, year, day)
	}
	return nil
}

// ValidateGregorian checks a Gregorian (year, month, day) triple, including
// the October 1582 calendar gap. Pure predicate, same contract as
// ValidateEthiopian.
func ValidateGregorian(year, month, day int) error {
	if year <= 0 {
		return fmt.Errorf("%w: Gregorian year %d must be a positive integer", ErrInvalidComponent, year)
	}
	if month <= 0 {
		return fmt.Errorf("%w: Gregorian month %d must be between 1 and 12", ErrInvalidComponent, month)
	}
	if day <= 0 {
		return fmt.Errorf("%w: Gregorian day %d must be a positive integer", ErrInvalidComponent, day)
	}
	if month > 12 {
		return fmt.Errorf("%w: Gregorian month %d does not exist, the Gregorian calendar has only 12 months", ErrInvalidComponent, month)
	}

	daysInMonth := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if IsGregorianLeapYear(year) {
		daysInMonth[2] = 29
	}

	if year == 1582 && month == 10 && day >= 5 && day <= 14 {
		return fmt.Errorf("%w: October 5-14, 1582 were skipped during the adoption of the Gregorian calendar", ErrCalendarGap)
	}

	if day > daysInMonth[month] {
		if month == 2 {
			leapStatus := "non-leap year"
			if IsGregorianLeapYear(year) {
				leapStatus = "leap year"
			}
			return fmt.Errorf("%w: February has only %d days in %s %d, day %d was provided",
				ErrDayOutOfRange, daysInMonth[month], leapStatus, year, day)
		}
		return fmt.Errorf("%w: %s has only %d days in %d, day %d was provided",
			ErrDayOutOfRange, gregorianMonthNames[month], daysInMonth[month], year, day)
	}
	return nil
}
