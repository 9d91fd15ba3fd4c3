// Package format renders API values for display: wrapped-timestamp dates
// and US-locale currency.
package format

import (
	"regexp"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateUnknown is rendered when a date field is absent.
const DateUnknown = "N/A"

const dateLayout = "Jan 2, 2006"

// wrappedDatePattern matches the API's wrapped timestamp encoding,
// /Date(<epoch-millis>)/ with an optional timezone suffix.
var wrappedDatePattern = regexp.MustCompile(`/Date\((\d+)`)

var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// Date renders a wire date string as a calendar date. An empty value yields
// DateUnknown; a value that fails to parse is returned unchanged so the raw
// data stays visible rather than being masked by a sentinel.
func Date(value string) string {
	if value == "" {
		return DateUnknown
	}
	if m := wrappedDatePattern.FindStringSubmatch(value); m != nil {
		millis, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return value
		}
		return time.UnixMilli(millis).UTC().Format(dateLayout)
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(dateLayout)
		}
	}
	return value
}

// Currency renders an amount as US-locale currency text: dollar symbol,
// thousands grouping, two decimals.
func Currency(amount float64) string {
	return usPrinter.Sprintf("$%.2f", amount)
}
