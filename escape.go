package slug

import "strings"

// regexpSpecials are the characters EscapeRegexp prefixes with a backslash.
// The set covers everything that carries meaning inside a pattern or a
// character class, including the class-position hyphen and the escape
// character itself.
const regexpSpecials = `\!$()*+.:<=>?[]^{|}-`

// EscapeRegexp returns pattern with every regexp-special character escaped,
// so the result matches the original characters literally when embedded in
// a dynamically built pattern or character class.
//
// It escapes a wider set than regexp.QuoteMeta; in particular the hyphen,
// which forms ranges inside character classes.
func EscapeRegexp(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)
	for _, r := range pattern {
		if strings.ContainsRune(regexpSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
