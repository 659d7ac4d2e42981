package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgmodels "github.com/go-telegram/bot/models"
)

const (
	langEnglish = "en"
	langAmharic = "am"
)

const (
	modeEthToGreg = "E2G"
	modeGregToEth = "G2E"
)

// keyboards

var langKeyboard = &tgmodels.ReplyKeyboardMarkup{
	Keyboard: [][]tgmodels.KeyboardButton{
		{{Text: "English 🇬🇧"}, {Text: "አማርኛ 🇪🇹"}},
	},
	ResizeKeyboard:  true,
	OneTimeKeyboard: true,
}

var convertKeyboard = &tgmodels.ReplyKeyboardMarkup{
	Keyboard: [][]tgmodels.KeyboardButton{
		{{Text: "🇪🇹 Ethiopian → 🌍 Gregorian"}, {Text: "🌍 Gregorian → 🇪🇹 Ethiopian"}},
		{{Text: "🌐 Change Language"}},
	},
	ResizeKeyboard: true,
}

// Shown while waiting for a date, so all options stay accessible.
var waitingKeyboard = convertKeyboard

// month labels

var ethiopianMonths = [13]string{
	"መስከረም", "ጥቅምት", "ኅዳር", "ታህሳስ",
	"ጥር", "የካቲት", "መጋቢት", "ሚያዝያ",
	"ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ",
}

var gregorianMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// UI text

var text = map[string]map[string]string{
	langEnglish: {
		// Greetings / navigation
		"welcome": "👋 Welcome to the Ethiopian Date Converter!\n\n" +
			"I can convert dates between the Ethiopian and Gregorian calendars.\n\n" +
			"Please choose your language:",
		"choose": "✅ Language set to English.\n\nChoose a conversion direction:",
		"ask_e": "📥 Enter an Ethiopian date in this format:\n" +
			"YYYY/MM/DD\n\n" +
			"📌 Example: 2017/4/27\n\n" +
			"💡 The Ethiopian calendar has 13 months.\n" +
			"Months 1–12 have 30 days each.\n" +
			"Month 13 (ጳጉሜ / Pagume) has 5 days, or 6 in a leap year.",
		"ask_g": "📥 Enter a Gregorian date in this format:\n" +
			"YYYY/MM/DD\n\n" +
			"📌 Example: 2025/1/5",
		// Errors
		"unrecognised_lang": "🤔 I didn't understand that.\n\n" +
			"Please pick your language using the buttons below:",
		"unrecognised_mode": "🤔 I didn't understand that.\n\n" +
			"Please choose a conversion direction using the buttons below:",
		"unrecognised_date": "🤔 That doesn't look like a date.\n\n" +
			"Please enter the date in YYYY/MM/DD format.\n" +
			"📌 Example: %s\n\n" +
			"Or pick a different option from the menu below.",
		"format_error": "❌ Wrong format.\n\n" +
			"Use YYYY/MM/DD  (numbers only, separated by /)\n" +
			"📌 Example: %s\n\n" +
			"Please try again, or pick a different option below.",
		"conversion_error": "❌ Invalid date:\n\n" +
			"%s\n\n" +
			"Please correct the date and try again, or pick a different option below.",
		// Success
		"e2g": "✅ Ethiopian date:\n%s\n\n➡️ Gregorian date:\n%s\n\nConvert another date:",
		"g2e": "✅ Gregorian date:\n%s\n\n➡️ Ethiopian date:\n%s\n\nConvert another date:",
		// Help
		"help": "ℹ️ <b>Ethiopian Date Converter — Help</b>\n\n" +
			"<b>How to use:</b>\n" +
			"1️⃣ Choose a conversion direction\n" +
			"2️⃣ Type your date as YYYY/MM/DD\n" +
			"3️⃣ Receive the converted date\n\n" +
			"<b>Ethiopian calendar facts:</b>\n" +
			"• 13 months total\n" +
			"• Months 1–12 each have 30 days\n" +
			"• Month 13 (ጳጉሜ/Pagume) has 5 days (6 in a leap year)\n" +
			"• Ethiopian year is ~7–8 years behind the Gregorian year\n\n" +
			"<b>Examples:</b>\n" +
			"• Ethiopian 2017/4/27  →  Gregorian January 5, 2025\n" +
			"• Gregorian 2025/1/5  →  Ethiopian 2017/4/27\n\n" +
			"<b>Commands:</b>\n" +
			"/start — restart the bot\n" +
			"/help  — show this message",
		"change_language": "Choose your language:",
		"not_admin":       "⛔ This command is only available to administrators.",
		"stats": "📊 <b>Bot Statistics</b>\n\n" +
			"👥 Total unique users: <b>%d</b>\n" +
			"🆔 Your user ID: <code>%d</code>\n" +
			"💾 Storage: %s",
	},
	langAmharic: {
		// Greetings / navigation
		"welcome": "👋 እንኳን ደህና መጡ! የኢትዮጵያ ቀን መቀየሪያ!\n\n" +
			"በኢትዮጵያ እና ግሪጎሪያን ካላንደሮች መካከል ቀናትን መቀየር ይችላሉ።\n\n" +
			"ቋንቋ ይምረጡ:",
		"choose": "✅ ቋንቋ አማርኛ ተመርጧል።\n\nየመቀየሪያ አቅጣጫ ይምረጡ:",
		"ask_e": "📥 የኢትዮጵያ ቀን ያስገቡ:\n" +
			"YYYY/MM/DD\n\n" +
			"📌 ምሳሌ: 2017/4/27\n\n" +
			"💡 የኢትዮጵያ ካላንደር 13 ወሮች አሉት።\n" +
			"ወር 1–12 እያንዳንዳቸው 30 ቀናት አሏቸው።\n" +
			"ወር 13 (ጳጉሜ) 5 ቀናት አሉት፣ ወይም 6 ቀናት ዘመነ ሉቃስ።",
		"ask_g": "📥 የግሪጎሪያን ቀን ያስገቡ:\n" +
			"YYYY/MM/DD\n\n" +
			"📌 ምሳሌ: 2025/1/5",
		// Errors
		"unrecognised_lang": "🤔 ያስገቡት ጽሑፍ አልተረዳም።\n\n" +
			"እባክዎ ከታቹ ያሉ አዝራሮችን ተጠቅመው ቋንቋ ይምረጡ:",
		"unrecognised_mode": "🤔 ያስገቡት ጽሑፍ አልተረዳም።\n\n" +
			"እባክዎ ከታቹ ያሉ አዝራሮችን ተጠቅመው የመቀየሪያ አቅጣጫ ይምረጡ:",
		"unrecognised_date": "🤔 ያስገቡት ቀን አይደለም።\n\n" +
			"ቀኑን YYYY/MM/DD ቅጽ ያስገቡ።\n" +
			"📌 ምሳሌ: %s\n\n" +
			"ወይም ከታቹ ሌላ አማራጭ ይምረጡ።",
		"format_error": "❌ ቅጹ ተሳስቷል።\n\n" +
			"YYYY/MM/DD ይጠቀሙ  (ቁጥሮች ብቻ፣ በ / ይለዩ)\n" +
			"📌 ምሳሌ: %s\n\n" +
			"እባክዎ እንደገና ሞክሩ፣ ወይም ከታቹ ሌላ አማራጭ ይምረጡ።",
		"conversion_error": "❌ ቀኑ ልክ አይደለም:\n\n" +
			"%s\n\n" +
			"ቀኑን አርመው እንደገና ሞክሩ፣ ወይም ከታቹ ሌላ አማራጭ ይምረጡ።",
		// Success
		"e2g": "✅ የኢትዮጵያ ቀን:\n%s\n\n➡️ የግሪጎሪያን ቀን:\n%s\n\nሌላ ቀን ቀይሩ:",
		"g2e": "✅ የግሪጎሪያን ቀን:\n%s\n\n➡️ የኢትዮጵያ ቀን:\n%s\n\nሌላ ቀን ቀይሩ:",
		// Help
		"help": "ℹ️ <b>የኢትዮጵያ ቀን መቀየሪያ — እገዛ</b>\n\n" +
			"<b>አጠቃቀም:</b>\n" +
			"1️⃣ የመቀየሪያ አቅጣጫ ይምረጡ\n" +
			"2️⃣ ቀኑን YYYY/MM/DD ቅጽ ያስገቡ\n" +
			"3️⃣ የተቀየረውን ቀን ይቀበሉ\n\n" +
			"<b>የኢትዮጵያ ካላንደር:</b>\n" +
			"• 13 ወሮች አሉ\n" +
			"• ወር 1–12 እያንዳንዳቸው 30 ቀናት\n" +
			"• ወር 13 (ጳጉሜ) 5 ቀናት (ዘመነ ሉቃስ 6 ቀናት)\n" +
			"• የኢትዮጵያ ዓ.ም ከግሪጎሪያን ~7-8 ዓመት ወደኋላ ነው\n\n" +
			"<b>ምሳሌዎች:</b>\n" +
			"• ኢትዮ 2017/4/27  →  ጃንዋሪ 5, 2025\n" +
			"• ግሪጎ 2025/1/5  →  ኢትዮ 2017/4/27\n\n" +
			"<b>ትዕዛዞች:</b>\n" +
			"/start — ቦቱን ዳግም ጀምር\n" +
			"/help  — ይህን መልዕክት አሳይ",
		"change_language": "ቋንቋ ይምረጡ:",
		"not_admin":       "⛔ ይህ ትዕዛዝ ለአስተዳዳሪዎች ብቻ ነው።",
		"stats": "📊 <b>የቦት አኃዛዊ መረጃ</b>\n\n" +
			"👥 ጠቅላላ ልዩ ተጠቃሚዎች: <b>%d</b>\n" +
			"🆔 የእርስዎ ተጠቃሚ መለያ: <code>%d</code>\n" +
			"💾 ማከማቻ: %s",
	},
}

// Example dates shown in error messages, per conversion direction.
var exampleDate = map[string]string{
	modeEthToGreg: "2017/4/27",
	modeGregToEth: "2025/1/5",
}

// date helpers

var errBadDateFormat = errors.New("wrong date format")

// looksLikeDate reports whether the text at least resembles a date attempt
// (contains digits and a slash).
func looksLikeDate(s string) bool {
	return strings.Contains(s, "/") && strings.ContainsAny(s, "0123456789")
}

// parseSlashDate parses YYYY/MM/DD into three integers. Any deviation from
// that shape fails with errBadDateFormat; range checking belongs to the
// converter, not here.
func parseSlashDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, errBadDateFormat
	}
	var nums [3]int
	for i, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, errBadDateFormat
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func formatEthiopian(year, month, day int) string {
	return fmt.Sprintf("%d %s %d ዓ.ም", day, ethiopianMonths[month-1], year)
}

func formatGregorian(year, month, day int) string {
	return fmt.Sprintf("%s %d, %d", gregorianMonths[month-1], day, year)
}
