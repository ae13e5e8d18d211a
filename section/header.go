package section

import (
	"slices"
	"strings"
)

var headerTags = []string{
	TagCompiledBy, TagContact, TagData, TagDate, TagDescription, TagGas, TagSource, TagUnit,
}

// HeaderTags returns the recognized header tags.
func HeaderTags() []string {
	return slices.Clone(headerTags)
}

// ExtractHeaderTags collects "Tag: value" lines from a free-text header.
//
// Tags match case-insensitively at the start of a trimmed line. The first
// matching tag wins for a line, and later lines overwrite earlier values of
// the same tag.
func ExtractHeaderTags(header string) map[string]string {
	tags := make(map[string]string)
	for line := range strings.SplitSeq(header, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		for _, tag := range headerTags {
			prefix := tag + ":"
			if strings.HasPrefix(lower, prefix) {
				tags[tag] = strings.TrimSpace(line[len(prefix):])
				break
			}
		}
	}

	return tags
}

// CountLines returns the number of lines text occupies once terminated by a newline.
func CountLines(text string) int {
	if text == "" {
		return 0
	}

	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}

	return n
}
