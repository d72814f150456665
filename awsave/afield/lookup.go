package afield

import (
	"strings"

	"github.com/samber/lo"
)

// foldLabel reduces a label to lowercase alphanumerics so user input
// like "uv-light" matches the catalog label "UV Light".
func foldLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindFlag looks a flag up by label, tolerating case and punctuation
// differences.
func FindFlag(flags []Flag, label string) (Flag, bool) {
	want := foldLabel(label)
	return lo.Find(flags, func(f Flag) bool {
		return foldLabel(f.Label) == want
	})
}

// FindChoice looks a choice up by label, tolerating case and
// punctuation differences.
func FindChoice(choices []Choice, label string) (Choice, bool) {
	want := foldLabel(label)
	return lo.Find(choices, func(c Choice) bool {
		return foldLabel(c.Label) == want
	})
}
