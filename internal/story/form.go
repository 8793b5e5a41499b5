// ABOUTME: Goal form data and display formatting
// ABOUTME: Holds the ten goal-picture fields and their vi-VN presentation
package story

import (
	"strconv"
	"strings"
)

// Form is the user's 30-day goal description
type Form struct {
	Date                  string `toml:"date"` // YYYY-MM-DD
	Name                  string `toml:"name"`
	Location              string `toml:"location"`
	Amount                int64  `toml:"amount"` // VND
	Account               string `toml:"account"`
	Moment                string `toml:"moment"`
	CelebrateWith1        string `toml:"celebrate_with_1"`
	CelebrateWith2        string `toml:"celebrate_with_2"`
	CelebrateWith2Pronoun string `toml:"celebrate_with_2_pronoun"`
	MessageTo             string `toml:"message_to"`
}

// DefaultForm returns the pre-filled example values
func DefaultForm() Form {
	return Form{
		Date:                  "",
		Name:                  "Lê Trường",
		Location:              "khách sạn Sheraton, TP Hồ Chí Minh",
		Amount:                30000000,
		Account:               "BIDV 0157",
		Moment:                "tiền về tài khoản ting ting",
		CelebrateWith1:        "bạn gái",
		CelebrateWith2:        "DN Hồng Nga, chủ tịch Đoàn Mai Ly",
		CelebrateWith2Pronoun: "anh",
		MessageTo:             "zoom Liên Minh",
	}
}

// Incomplete reports whether any field is empty or the amount is zero
func (f Form) Incomplete() bool {
	if f.Amount == 0 {
		return true
	}
	for _, v := range f.textFields() {
		if v == "" {
			return true
		}
	}
	return false
}

func (f Form) textFields() []string {
	return []string{
		f.Date, f.Name, f.Location, f.Account, f.Moment,
		f.CelebrateWith1, f.CelebrateWith2, f.CelebrateWith2Pronoun, f.MessageTo,
	}
}

// FormatDate turns YYYY-MM-DD into DD-MM-YYYY; anything else is returned unchanged
func FormatDate(date string) string {
	if !strings.Contains(date, "-") {
		return date
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// FormatAmount groups digits with '.' as in vi-VN, e.g. 30000000 -> 30.000.000
func FormatAmount(amount int64) string {
	neg := amount < 0
	digits := strconv.FormatInt(amount, 10)
	if neg {
		digits = digits[1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
