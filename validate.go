package slug

// IsValid reports whether s is already a well-formed slug for the given
// options: only allowed characters, no leading, trailing or doubled
// separators. It holds exactly when running Make over s would change
// nothing. Options that add randomness (WithSuffix) are ignored. The
// empty string is valid, being a legal pipeline output.
func IsValid(s string, opts ...Option) bool {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.suffixLength = 0
	return cfg.make(s) == s
}
