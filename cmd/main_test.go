package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlashDate(t *testing.T) {
	tests := []struct {
		input   string
		year    int
		month   int
		day     int
		wantErr bool
	}{
		{input: "2017/4/27", year: 2017, month: 4, day: 27},
		{input: "2025/01/05", year: 2025, month: 1, day: 5},
		{input: "2016 / 13 / 6", year: 2016, month: 13, day: 6},
		{input: "2017-4-27", wantErr: true},
		{input: "2017/4", wantErr: true},
		{input: "2017/4/27/1", wantErr: true},
		{input: "year/month/day", wantErr: true},
		{input: "2017/4.5/27", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			year, month, day, err := parseSlashDate(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, errBadDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.year, year)
			assert.Equal(t, tc.month, month)
			assert.Equal(t, tc.day, day)
		})
	}
}

func TestLooksLikeDate(t *testing.T) {
	assert.True(t, looksLikeDate("2017/4/27"))
	assert.True(t, looksLikeDate("13/2017"))
	assert.False(t, looksLikeDate("hello"))
	assert.False(t, looksLikeDate("what is today's date?"))
	assert.False(t, looksLikeDate("2017"))
}

func TestFormatEthiopian(t *testing.T) {
	assert.Equal(t, "27 ታህሳስ 2017 ዓ.ም", formatEthiopian(2017, 4, 27))
	assert.Equal(t, "6 ጳጉሜ 2016 ዓ.ም", formatEthiopian(2016, 13, 6))
	assert.Equal(t, "1 መስከረም 2010 ዓ.ም", formatEthiopian(2010, 1, 1))
}

func TestFormatGregorian(t *testing.T) {
	assert.Equal(t, "January 5, 2025", formatGregorian(2025, 1, 5))
	assert.Equal(t, "September 11, 2017", formatGregorian(2017, 9, 11))
	assert.Equal(t, "December 31, 2022", formatGregorian(2022, 12, 31))
}

func TestSessionLifecycle(t *testing.T) {
	sess := getSession(100, 1)
	assert.Equal(t, "", sess.Lang)
	assert.Equal(t, "", sess.Mode)

	sess.Lang = langAmharic
	sess.Mode = modeEthToGreg

	again := getSession(100, 1)
	assert.Equal(t, langAmharic, again.Lang)
	assert.Equal(t, modeEthToGreg, again.Mode)

	resetSession(100, 1)
	fresh := getSession(100, 1)
	assert.Equal(t, "", fresh.Lang)
	assert.Equal(t, "", fresh.Mode)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	a := getSession(200, 1)
	b := getSession(200, 2)
	c := getSession(201, 1)

	a.Lang = langEnglish
	assert.Equal(t, "", b.Lang)
	assert.Equal(t, "", c.Lang)

	resetSession(200, 1)
	assert.Equal(t, "", getSession(200, 1).Lang)
}

func TestTextCatalogIsComplete(t *testing.T) {
	keys := []string{
		"welcome", "choose", "ask_e", "ask_g",
		"unrecognised_lang", "unrecognised_mode", "unrecognised_date",
		"format_error", "conversion_error",
		"e2g", "g2e", "help", "change_language", "not_admin", "stats",
	}
	for _, lang := range []string{langEnglish, langAmharic} {
		for _, key := range keys {
			assert.NotEmpty(t, text[lang][key], "missing %s/%s", lang, key)
		}
	}
}
