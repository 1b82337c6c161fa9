package splitter

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"specdoc/internal/encoding"
)

// Result holds the two streams a specification document splits into.
// Metadata feeds the metadata tree builder; Blueprint is the exact input
// contract of the external structural parser.
type Result struct {
	Metadata  string
	Blueprint string
}

var (
	// Matches a parameter/value bullet inside a "+ Parameters" block.
	parameterBulletRe = regexp.MustCompile(`^[ \t]*[+|-][ ]([^ +-]*)[ ]*-?(.*)$`)
	blankishRe        = regexp.MustCompile(`^ *$`)
)

// SplitFile reads a specification document, decodes it (with legacy
// encoding fallback) and splits it into its two streams.
func SplitFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification: %w", err)
	}
	return Split(encoding.DecodeText(data)), nil
}

// Split separates a decoded specification document into the metadata
// stream and the blueprint stream in a single forward pass.
//
// The document is consumed in a fixed phase order that is never
// revisited: front matter (key: value lines, copied to the blueprint
// stream since the structural parser owns them), title (dropped from
// both streams; the title heading itself is re-emitted to the metadata
// stream by a small pre-pass), then the body. Body lines go to the
// metadata stream until the first blueprint heading, after which every
// remaining line goes to the blueprint stream with tabs expanded and
// parentheses escaped inside parameter descriptions.
func Split(doc string) *Result {
	lines := readLines(doc)

	var meta, blueprint strings.Builder

	// Title pre-pass: the document title heading opens the metadata
	// stream so the tree builder roots its sections under it.
	for _, line := range lines {
		if strings.HasPrefix(line, "# ") {
			meta.WriteString(line + "\n")
			break
		}
	}

	inFrontMatter := true
	inTitle := false
	inBlueprint := false
	inParameters := false

	for _, line := range lines {
		if inFrontMatter && !strings.Contains(line, ":") {
			// First line that is not a key: value pair ends front
			// matter; it belongs to neither stream.
			inFrontMatter = false
			inTitle = true
			continue
		}

		if inFrontMatter {
			line, inParameters = preprocessBlueprintLine(line, inParameters)
			blueprint.WriteString(line + "\n")
			continue
		}

		if inTitle {
			if !strings.HasPrefix(line, "##") {
				continue
			}
			inTitle = false
		}

		if !inBlueprint {
			inBlueprint = IsBlueprintStart(line)
		}

		if !inBlueprint {
			meta.WriteString(line + "\n")
			continue
		}

		line, inParameters = preprocessBlueprintLine(line, inParameters)
		blueprint.WriteString(line + "\n")
	}

	return &Result{
		Metadata:  meta.String(),
		Blueprint: blueprint.String(),
	}
}

// preprocessBlueprintLine applies the line-level fixups required by the
// structural parser: tab expansion everywhere, and parenthesis escaping
// in the free-text part of parameter definitions, where the parser
// would otherwise read them as attribute-list syntax.
func preprocessBlueprintLine(line string, inParameters bool) (string, bool) {
	line = strings.ReplaceAll(line, "\t", "    ")

	if !inParameters {
		return line, line == "+ Parameters"
	}

	if parameterBulletRe.MatchString(line) || blankishRe.MatchString(line) {
		return escapeParameterParens(line), true
	}
	return line, false
}

// escapeParameterParens rewrites literal parentheses in the description
// portion of a parameter definition (everything after the first " - ")
// to their entity form.
func escapeParameterParens(definition string) string {
	parts := strings.SplitN(definition, " - ", 2)
	if len(parts) < 2 {
		return definition
	}

	body := strings.ReplaceAll(parts[1], "(", "&#40;")
	body = strings.ReplaceAll(body, ")", "&#41;")
	return parts[0] + " - " + body
}

func readLines(doc string) []string {
	scanner := bufio.NewScanner(strings.NewReader(doc))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
