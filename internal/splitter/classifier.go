package splitter

import (
	"regexp"
	"strings"
)

// Heading shapes that belong to the blueprint section. Classification is
// independent of heading depth: any number of leading '#' markers counts.
var (
	groupHeadingRe    = regexp.MustCompile(`^#*[ ]Group([ \w\W\-\_]*)$`)
	resourceHeadingRe = regexp.MustCompile(`^#*[ ]([ \w\W\-\_]*) \[([ \w\W\-\_]*)\]$`)
	directURIRe       = regexp.MustCompile(`^#*[ ]([ ]*[/][ \w\W\-\_]*)$`)
)

// IsBlueprintStart reports whether the given line (without its trailing
// newline) begins the blueprint section of an extended specification
// document. Once a document hits a blueprint line, everything after it
// belongs to the blueprint stream.
func IsBlueprintStart(line string) bool {
	switch strings.TrimSpace(line) {
	case "# REST API", "## Data Structures":
		return true
	}

	return groupHeadingRe.MatchString(line) ||
		resourceHeadingRe.MatchString(line) ||
		directURIRe.MatchString(line)
}
