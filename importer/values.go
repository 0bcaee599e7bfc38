package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"choque/internal/fold"

	"github.com/dustin/go-humanize"
)

var nonDigits = regexp.MustCompile(`\D+`)

const (
	million = 1_000_000
	billion = 1_000_000_000
)

// ParsePrice keeps only the digits of raw. Cells without digits, or with more
// digits than fit, parse to zero.
func ParsePrice(raw string) int64 {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// Digits right after a unit continue the amount as decimals: "8tr5" is 8.5
// million.
var amountPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)*)\s*(?:(ty|trieu|tr|nghin|ngan|k)(\d*)\b)?`)

var unitMultipliers = map[string]float64{
	"ty":    billion,
	"trieu": million,
	"tr":    million,
	"nghin": 1000,
	"ngan":  1000,
	"k":     1000,
}

// ParseAmount reads amounts written with Vietnamese units such as "2,5 tỷ",
// "7-9 triệu" or "200k". The first number is scaled by the first unit found.
// Cells without a unit parse like ParsePrice.
func ParseAmount(raw string) int64 {
	matches := amountPattern.FindAllStringSubmatch(fold.Fold(raw), -1)
	if len(matches) == 0 {
		return 0
	}

	unit := ""
	for _, match := range matches {
		if match[2] != "" {
			unit = match[2]
			break
		}
	}
	multiplier, ok := unitMultipliers[unit]
	if !ok {
		return ParsePrice(raw)
	}

	number := strings.ReplaceAll(matches[0][1], ",", ".")
	if strings.Count(number, ".") > 1 {
		number = strings.ReplaceAll(number, ".", "")
	}
	if fraction := matches[0][3]; fraction != "" && !strings.Contains(number, ".") {
		number += "." + fraction
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(value * multiplier))
}

// PhoneDigits strips formatting from a phone number for tel: and chat links.
func PhoneDigits(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// PriceFormat renders parsed prices for display.
type PriceFormat struct {
	// Suffix follows grouped full amounts, e.g. "đ".
	Suffix string
	// Abbreviate renders millions as "X Tr" and billions as "X Tỷ".
	Abbreviate bool
	// Unit follows every rendered amount, e.g. "/tháng" for salaries.
	Unit string
	// KeepText shows the source cell as written when it carries its own
	// unit or range, e.g. "7-9 triệu".
	KeepText bool
}

// Format renders value, or "" for non-positive values so the field default
// ("contact for price") applies.
func (f PriceFormat) Format(value int64) string {
	if value <= 0 {
		return ""
	}

	var text string
	switch {
	case f.Abbreviate && value >= billion:
		text = decimalAmount(float64(value)/billion) + " Tỷ"
	case f.Abbreviate && value >= million:
		text = decimalAmount(float64(value)/million) + " Tr"
	default:
		text = humanize.FormatInteger("#.###,", int(value)) + f.Suffix
	}
	return text + f.Unit
}

// decimalAmount renders up to two decimals with a Vietnamese decimal comma.
func decimalAmount(value float64) string {
	text := humanize.FormatFloat("#.###,##", value)
	if strings.Contains(text, ",") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ",")
	}
	return text
}

var flagValues = map[string]struct{}{
	"1": {}, "x": {}, "y": {}, "yes": {}, "true": {}, "ok": {}, "co": {},
	"verified": {}, "xacminh": {}, "daxacminh": {}, "xacthuc": {}, "daxacthuc": {}, "uytin": {},
	"hot": {}, "new": {}, "moi": {}, "tinmoi": {}, "noibat": {}, "uutien": {},
}

// IsFlagSet reports whether a checkbox-like cell reads as set. Matching is
// exact on the compacted value so "không có" does not read as "có".
func IsFlagSet(raw string) bool {
	_, ok := flagValues[fold.Compact(raw)]
	return ok
}

func normalizeFlag(raw string) string {
	if IsFlagSet(raw) {
		return "true"
	}
	return ""
}

func normalizePhone(raw string) string {
	if PhoneDigits(raw) == "" {
		return ""
	}
	return collapseSpaces(raw)
}
