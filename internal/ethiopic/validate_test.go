package ethiopic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEthiopian(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		wantErr          error
	}{
		{"regular day", 2017, 4, 27, nil},
		{"last day of a 30-day month", 2017, 12, 30, nil},
		{"pagume day 5 always valid", 2015, 13, 5, nil},
		{"pagume day 6 in leap year", 2016, 13, 6, nil},
		{"pagume day 6 in earlier leap year", 2012, 13, 6, nil},

		{"zero year", 0, 1, 1, ErrInvalidComponent},
		{"negative year", -5, 1, 1, ErrInvalidComponent},
		{"zero month", 2017, 0, 1, ErrInvalidComponent},
		{"month 14", 2017, 14, 1, ErrInvalidComponent},
		{"zero day", 2017, 1, 0, ErrInvalidComponent},
		{"negative day", 2017, 1, -3, ErrInvalidComponent},

		{"day 31 in a 30-day month", 2017, 6, 31, ErrDayOutOfRange},
		{"pagume day 6 in non-leap year", 2015, 13, 6, ErrDayOutOfRange},
		{"pagume day 7 in leap year", 2016, 13, 7, ErrDayOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEthiopian(tt.year, tt.month, tt.day)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateEthiopianPagumeMessage(t *testing.T) {
	err := ValidateEthiopian(2015, 13, 6)
	assert.ErrorContains(t, err, "non-leap year 2015")

	err = ValidateEthiopian(2016, 13, 7)
	assert.ErrorContains(t, err, "leap year 2016")
	assert.ErrorContains(t, err, "6 days")
}

func TestValidateGregorian(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		wantErr          error
	}{
		{"regular day", 2025, 1, 5, nil},
		{"december 31", 2024, 12, 31, nil},
		{"leap february 29", 2024, 2, 29, nil},
		{"century leap february 29", 2000, 2, 29, nil},
		{"before the 1582 gap", 1582, 10, 4, nil},
		{"after the 1582 gap", 1582, 10, 15, nil},

		{"zero year", 0, 1, 1, ErrInvalidComponent},
		{"zero month", 2025, 0, 1, ErrInvalidComponent},
		{"month 13", 2025, 13, 1, ErrInvalidComponent},
		{"zero day", 2025, 1, 0, ErrInvalidComponent},

		{"february 29 in non-leap year", 2023, 2, 29, ErrDayOutOfRange},
		{"february 29 in century non-leap year", 1900, 2, 29, ErrDayOutOfRange},
		{"april 31", 2025, 4, 31, ErrDayOutOfRange},
		{"january 32", 2025, 1, 32, ErrDayOutOfRange},

		{"first gap day", 1582, 10, 5, ErrCalendarGap},
		{"middle gap day", 1582, 10, 10, ErrCalendarGap},
		{"last gap day", 1582, 10, 14, ErrCalendarGap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGregorian(tt.year, tt.month, tt.day)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateGregorianFebruaryMessage(t *testing.T) {
	err := ValidateGregorian(2023, 2, 29)
	assert.ErrorContains(t, err, "non-leap year 2023")

	err = ValidateGregorian(2024, 2, 30)
	assert.ErrorContains(t, err, "leap year 2024")
	assert.ErrorContains(t, err, "29 days")
}
