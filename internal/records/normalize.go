package records

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const overallReport = "overallReport"

var numberedRecord = regexp.MustCompile(`(?i)#[0-9]+Record`)

// maxNormalizePasses bounds NormalizeKey; every input observed settles within
// three passes.
const maxNormalizePasses = 4

// NormalizeKey turns a device field key into an identifier-style token, e.g.
// "APPLICATION MODE" becomes "applicationMode" and "Result" becomes "result".
// The result is a fixed point: normalizing it again returns it unchanged.
func NormalizeKey(key string) string {
	out := normalizeOnce(key)
	for range maxNormalizePasses {
		next := normalizeOnce(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func normalizeOnce(key string) string {
	return lowerFirst(titleWords(key))
}

// CategoryLabel derives the group label of a record from its TableCategory.
// Numbered repeats such as "APPROVED SAF #1 RECORD" or "ApprovedSAF#1Record"
// collapse into one plural label ("approvedSafRecords").
func CategoryLabel(category string) string {
	if strings.TrimSpace(category) == "" {
		return overallReport
	}
	label := lowerFirst(titleWords(strings.ToLower(splitCamel(category))))
	if numberedRecord.MatchString(label) {
		label = numberedRecord.ReplaceAllString(label, "") + "Records"
	}
	return label
}

// Categorize returns the group label for rec.
func Categorize(rec Record) string {
	return CategoryLabel(rec.TableCategory)
}

// splitCamel inserts a space at camel-case word boundaries: before an
// upper-case letter that follows a lower-case letter or a digit, and before
// the last capital of an acronym followed by a lower-case letter
// ("ApprovedSAFRecord" -> "Approved SAF Record").
func splitCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				b.WriteByte(' ')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// titleWords upper-cases the first letter of every whitespace separated word
// and joins the words. A word whose title-cased form keeps no lower-case
// letter is lower-cased behind its first letter instead.
func titleWords(s string) string {
	keep := cases.Title(language.Und, cases.NoLower)
	lower := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	for _, word := range strings.Fields(s) {
		titled := keep.String(word)
		if !hasLower(titled) {
			titled = lower.String(word)
		}
		b.WriteString(titled)
	}
	return b.String()
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
