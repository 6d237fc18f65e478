// Package slug converts arbitrary text into URL-safe slugs.
//
// Slugification runs a fixed four-stage pipeline: Unicode normalization
// (NFKD decomposition with combining-mark removal, so "café" becomes
// "cafe"), filtering of characters outside the allowed set, collapsing of
// whitespace and separator runs into a single separator, and trimming of
// boundary separators. The result contains only lowercase letters, digits,
// the separator and an optional extra "keep" character, with no leading,
// trailing or doubled separators. The transformation is idempotent:
// feeding a slug back in returns it unchanged.
//
// # Usage
//
//	import "github.com/dmitrymomot/slug"
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Make("file_name.txt", slug.Keep('_'))
//	// Output: "file_name-txt"
//
// Absent input is modeled with a pointer; MakePtr returns the IfNull
// fallback (nil by default) without running the pipeline:
//
//	title := slug.MakePtr(nil, slug.IfNull("untitled"))
//	// *title == "untitled"
//
// Django applies that framework's historical slug defaults (underscores
// preserved, the literal "none" for absent input):
//
//	s2 := slug.Django(nil)
//	// *s2 == "none"
//
// # Configuration Options
//
// The package uses functional options:
//
//   - Separator: the character joining tokens (default '-')
//   - Keep: one extra character preserved besides letters and digits
//   - IfNull: fallback value returned by MakePtr for nil input
//   - Lowercase: enable/disable lowercase conversion (default: true)
//   - MaxLength: maximum slug length, counted in runes
//   - StripChars: characters deleted before the pipeline runs
//   - CustomReplace: literal replacements applied first (e.g. "&" → "and")
//   - WithSuffix: random alphanumeric suffix to reduce collisions
//
// # Dynamic Patterns
//
// The filter and collapse stages build their character classes at call
// time from the separator and keep characters. EscapeRegexp escapes the
// interpolated literals unconditionally, so any rune is safe to choose as
// a separator, including regexp metacharacters like '.'.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use without
// coordination. Random suffixes are drawn from crypto/rand.
package slug
