package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slug"
)

var appVersion = "dev"

func newRootCmd() *cobra.Command {
	var (
		separator string
		keep      string
		maxLength int
		upper     bool
		django    bool
	)

	cmd := &cobra.Command{
		Use:     "slugify [text...]",
		Short:   "Convert text to a URL-safe slug",
		Long:    "slugify normalizes text into a lowercase, ASCII-safe, separator-delimited slug.\nArguments are joined with spaces; with no arguments, stdin is read.",
		Version: appVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []slug.Option

			if separator != "-" {
				r, err := singleRune("separator", separator)
				if err != nil {
					return err
				}
				opts = append(opts, slug.Separator(r))
			}
			if keep != "" {
				r, err := singleRune("keep", keep)
				if err != nil {
					return err
				}
				opts = append(opts, slug.Keep(r))
			}
			if maxLength > 0 {
				opts = append(opts, slug.MaxLength(maxLength))
			}
			if upper {
				opts = append(opts, slug.Lowercase(false))
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			var out string
			if django {
				out = *slug.Django(&text, opts...)
			} else {
				out = slug.Make(text, opts...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "separator character (exactly one)")
	cmd.Flags().StringVarP(&keep, "keep", "k", "", "extra character to preserve (exactly one)")
	cmd.Flags().IntVarP(&maxLength, "max-length", "m", 0, "maximum slug length in runes (0 = unlimited)")
	cmd.Flags().BoolVar(&upper, "preserve-case", false, "keep the original letter case")
	cmd.Flags().BoolVar(&django, "django", false, "use Django slug defaults (underscores preserved)")
	cmd.SilenceUsage = true

	return cmd
}

// singleRune validates that a flag value is exactly one character.
func singleRune(flag, value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 || size != len(value) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("--%s must be exactly one character, got %q", flag, value)
	}
	return r, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
