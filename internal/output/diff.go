package output

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff lists the lines removed ("- ") and added ("+ ") between two texts, unchanged lines are left out.
func (s Styler) LineDiff(before string, after string) string {
	differ := diffpatch.New()
	encodedBefore, encodedAfter, lines := differ.DiffLinesToChars(before, after)
	diffs := differ.DiffCharsToLines(differ.DiffMain(encodedBefore, encodedAfter, false), lines)

	var out strings.Builder
	for _, diff := range diffs {
		var prefix string
		style := addedStyle
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
			style = removedStyle
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			out.WriteString(s.render(style, prefix+line))
			out.WriteRune('\n')
		}
	}
	return out.String()
}
