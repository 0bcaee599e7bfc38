// Package fold turns Vietnamese free text into comparison keys: lowercase,
// diacritics stripped, whitespace collapsed.
package fold

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Chains are stateful, so each caller borrows its own.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// đ is a separate letter, not d plus a combining mark, so NFD leaves it alone.
var letterReplacer = strings.NewReplacer("đ", "d", "Đ", "d")

// Fold lowercases value, strips diacritics and collapses runs of whitespace.
func Fold(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = letterReplacer.Replace(strings.ToLower(value))

	chain := chainPool.Get().(transform.Transformer)
	folded, _, err := transform.String(chain, value)
	chain.Reset()
	chainPool.Put(chain)
	if err != nil {
		folded = value
	}

	return strings.Join(strings.Fields(folded), " ")
}

// Compact is Fold with all whitespace removed, so "Đã Bán" and "DaBan" agree.
func Compact(value string) string {
	return strings.Join(strings.Fields(Fold(value)), "")
}

// Key is the form used to compare spreadsheet header cells against synonyms.
func Key(value string) string {
	return keyReplacer.Replace(Compact(value))
}

var keyReplacer = strings.NewReplacer("_", "", "-", "", ".", "")
