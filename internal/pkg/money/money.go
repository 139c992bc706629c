// Package money renders integer minor-unit amounts as locale-aware display
// strings, e.g. 12345 EUR in de-DE -> "123,45 €".
package money

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCurrency = "USD"
	DefaultLocale   = "en-US"

	nbsp = " "
)

// Symbols for the currencies the marketplace actually trades in. Anything
// else falls back to its ISO code, which matches what CLDR-based formatters
// do for uncommon currencies.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"PLN": "zł",
	"CZK": "Kč",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"CHF": "CHF",
}

// Languages that place the currency symbol before the amount.
var prefixLanguages = map[string]bool{
	"en": true,
	"ja": true,
	"ko": true,
	"zh": true,
}

// Format renders amountCents for the given ISO 4217 code and BCP 47 locale.
// Empty code or locale fall back to the defaults. Invalid locales fall back
// to en-US rather than erroring; a list screen must never fail over a
// formatting problem.
func Format(amountCents int64, code, locale string) string {
	if code == "" {
		code = DefaultCurrency
	}
	code = strings.ToUpper(code)
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}

	amount := float64(amountCents) / math.Pow10(scale)
	num := message.NewPrinter(tag).Sprint(number.Decimal(amount, number.Scale(scale)))

	symbol, ok := symbols[code]
	if !ok {
		symbol = code
	}

	base, _ := tag.Base()
	if prefixLanguages[base.String()] {
		// Alphabetic symbols get a separating space, "$1.00" but "CHF 1.00".
		if symbol != code && !isAlpha(symbol) {
			return symbol + num
		}
		return symbol + nbsp + num
	}
	return num + nbsp + symbol
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return len(s) > 0
}
