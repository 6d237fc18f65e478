package slug

import (
	"crypto/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalize is stage 1: diacritic folding followed by lowercasing.
// NFKD decomposition plus combining-mark removal leaves the base letter
// ("é" → "e", "ñ" → "n"); characters without a decomposition pass through
// for the filter stage to handle. The chained transformer is stateful, so
// it is built per call rather than shared.
func normalize(s string, lowercase bool) string {
	foldMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(foldMarks, s)
	if err != nil {
		out = s
	}
	if lowercase {
		out = strings.ToLower(out)
	}
	return out
}

// filter is stage 2: every run of characters outside the allowed set
// (letters, digits, whitespace, separator, keep) becomes a single space,
// so foreign characters leave a word boundary for stage 3 to collapse.
// The character class is assembled from escaped literals; separator and
// keep runes can never act as metacharacters.
func filter(s string, separator, keep rune, lowercase bool) string {
	class := `a-z0-9\s`
	if !lowercase {
		class = `a-zA-Z0-9\s`
	}
	class += EscapeRegexp(string(separator))
	if keep != 0 {
		class += EscapeRegexp(string(keep))
	}
	re := regexp.MustCompile(`[^` + class + `]+`)
	return re.ReplaceAllString(s, " ")
}

// collapse is stage 3: every maximal run of whitespace and/or separator
// characters becomes one separator.
func collapse(s string, separator rune) string {
	re := regexp.MustCompile(`[\s` + EscapeRegexp(string(separator)) + `]+`)
	return re.ReplaceAllString(s, string(separator))
}

// trimEnds is stage 4: strip separator and keep characters, in any
// combination, from both ends.
func trimEnds(s string, separator, keep rune) string {
	cutset := string(separator)
	if keep != 0 {
		cutset += string(keep)
	}
	return strings.Trim(s, cutset)
}

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomSuffix returns a lowercase alphanumeric token from crypto/rand,
// falling back to a deterministic fill if the source fails.
func randomSuffix(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = suffixCharset[i%len(suffixCharset)]
		}
		return string(b)
	}
	for i := range b {
		b[i] = suffixCharset[b[i]%byte(len(suffixCharset))]
	}
	return string(b)
}
