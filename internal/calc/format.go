package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits is the number of fraction digits kept on display.
const MaxFractionDigits = 10

var ErrMalformedNumber = errors.New("malformed number")

var printer = message.NewPrinter(language.English)

// Format renders v with grouped thousands and at most MaxFractionDigits
// fraction digits, trailing zeros trimmed (#,##0.##########).
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case v == 0:
		// drops the sign of negative zero
		return "0"
	}
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(MaxFractionDigits)))
}

// ParseDisplay reads back text produced by Format or typed into the entry
// buffer.
func ParseDisplay(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	switch s {
	case "∞":
		return math.Inf(1), nil
	case "-∞":
		return math.Inf(-1), nil
	case "", "-", ".", "-.":
		return 0, ErrMalformedNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrMalformedNumber
	}
	return v, nil
}
