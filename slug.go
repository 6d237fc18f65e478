package slug

import "strings"

// Option configures slug generation.
type Option func(*config)

// config holds the configuration for slug generation.
type config struct {
	separator     rune
	keep          rune // 0 means no extra kept character
	ifNull        *string
	lowercase     bool
	maxLength     int
	stripChars    string
	customReplace map[string]string
	suffixLength  int
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		separator: '-',
		lowercase: true,
	}
}

// Separator sets the character that joins tokens. Default is '-'.
func Separator(r rune) Option {
	return func(c *config) {
		c.separator = r
	}
}

// Keep preserves one extra character besides letters, digits and the
// separator. A keep character equal to the separator is permitted and
// behaves as if only separator rules applied.
func Keep(r rune) Option {
	return func(c *config) {
		c.keep = r
	}
}

// IfNull sets the fallback value MakePtr returns for nil input.
// Without it, nil input yields a nil result.
func IfNull(s string) Option {
	return func(c *config) {
		c.ifNull = &s
	}
}

// Lowercase controls whether the slug is converted to lowercase.
// Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// Truncation never leaves a separator or keep character at the end.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// StripChars sets characters deleted from the input before the pipeline
// runs. Unlike filtering, stripped characters leave no word boundary.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace sets literal string replacements applied before
// slugification. For example: {"&": "and", "@": "at"}
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix adds a random alphanumeric suffix of the given length to
// reduce collision possibility, joined by the configured separator.
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Make creates a URL-safe slug from the input string. The input goes
// through four stages: diacritic normalization and lowercasing, filtering
// of disallowed characters, collapsing of whitespace and separator runs,
// and trimming of boundary separators. The result contains only letters,
// digits, the separator and the keep character, and Make is idempotent
// over its own output.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.make(s)
}

// MakePtr slugifies s, treating nil as an absent value: the pipeline never
// runs and the IfNull fallback (nil when unset) is returned instead. An
// empty string is a present value and slugifies to "", never the fallback.
func MakePtr(s *string, opts ...Option) *string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if s == nil {
		if cfg.ifNull == nil {
			return nil
		}
		out := *cfg.ifNull
		return &out
	}
	out := cfg.make(*s)
	return &out
}

// Django slugifies s with the defaults of Django's slug convention:
// hyphen separator, underscores preserved, and the literal "none" for nil
// input. Trailing options override the preset.
func Django(s *string, opts ...Option) *string {
	preset := []Option{Separator('-'), Keep('_'), IfNull("none")}
	return MakePtr(s, append(preset, opts...)...)
}

func (c *config) make(s string) string {
	for old, repl := range c.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}
	if c.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(c.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	s = normalize(s, c.lowercase)
	s = filter(s, c.separator, c.keep, c.lowercase)
	s = collapse(s, c.separator)
	s = trimEnds(s, c.separator, c.keep)

	if c.maxLength > 0 {
		if runes := []rune(s); len(runes) > c.maxLength {
			s = trimEnds(string(runes[:c.maxLength]), c.separator, c.keep)
		}
	}
	if c.suffixLength > 0 {
		s = c.appendSuffix(s)
	}
	return s
}

// appendSuffix joins a random suffix to the slug, keeping the total length
// within maxLength when one is set.
func (c *config) appendSuffix(s string) string {
	n := c.suffixLength
	if c.maxLength > 0 && n > c.maxLength {
		n = c.maxLength
	}
	suffix := randomSuffix(n)
	if s == "" {
		return suffix
	}
	if c.maxLength > 0 {
		// Room for the slug itself, one separator and the suffix.
		room := c.maxLength - n - 1
		if room <= 0 {
			return suffix
		}
		if runes := []rune(s); len(runes) > room {
			s = trimEnds(string(runes[:room]), c.separator, c.keep)
			if s == "" {
				return suffix
			}
		}
	}
	return s + string(c.separator) + suffix
}
