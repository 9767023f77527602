package output

import (
	"fmt"
	"strings"
)

// Indent prefixes every line of the text with the given number of spaces.
func Indent(spaces int, multilineText string) string {
	prefix := strings.Repeat(" ", spaces)
	return prefix + strings.ReplaceAll(multilineText, "\n", "\n"+prefix)
}

func Plural(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Counted renders a count with the matching word form, e.g. "2 directories".
func Counted(count int, singular string, plural string) string {
	return fmt.Sprintf("%d %s", count, Plural(count, singular, plural))
}
