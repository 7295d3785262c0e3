package config

import "iter"

// keywordBlocks iterates over the keyword blocks of a section's line range,
// splitting on blank lines. The sequence is restartable; each yielded block
// is a non-empty run of consecutive non-blank lines. Leading, trailing and
// consecutive blank lines produce no blocks.
func keywordBlocks(lines []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		start := -1
		for i, line := range lines {
			if line == "" {
				if start >= 0 && !yield(lines[start:i]) {
					return
				}
				start = -1
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			yield(lines[start:])
		}
	}
}
