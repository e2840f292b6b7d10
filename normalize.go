package dispatch

import (
	"strings"

	"github.com/stoewer/go-strcase"
)

// Normalize folds a raw command name into its canonical registry form.
// Runs of non-alphanumeric bytes become segment breaks and the segments
// join upper-camel-cased: "dump-me", "dump_me", "DUMP-ME", and "dumpMe"
// all normalize to "DumpMe". Empty or all-punctuation input normalizes
// to "". Pure and total.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingSep := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !isAlnum(c) {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteByte(c)
	}
	return strcase.UpperCamelCase(b.String())
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
