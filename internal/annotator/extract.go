package annotator

import (
	"bufio"
	"regexp"
	"strings"
)

// NestedDescription groups the nested parameter-value descriptions found
// under one resource or action header of the blueprint stream. The flat
// AST cannot express a description attached to an enumerated value, so
// these are extracted from the raw stream and spliced back in later.
type NestedDescription struct {
	Parent     string
	Parameters []*ParameterBlock
}

type ParameterBlock struct {
	Name   string
	Values []*ValueDescription
}

type ValueDescription struct {
	Name        string
	Description string
}

var (
	bulletRe  = regexp.MustCompile(`^[ \t]*[+\-][ ](.*)$`)
	blankRe   = regexp.MustCompile(`^[ \t]*$`)
	headingRe = regexp.MustCompile(`^#`)
)

// Extract scans the blueprint stream for "+ Parameters" blocks whose
// enumerated values carry their own indented description text. Only
// values that actually have a nested description are reported.
func Extract(blueprint string) []*NestedDescription {
	var results []*NestedDescription

	var headerLine string
	inParams := false
	paramIndent := -1
	valuesIndent := -1
	valueIndent := -1

	var paramName string
	var valueName string
	var descLines []string

	byParent := map[string]*NestedDescription{}

	flushValue := func() {
		if headerLine == "" || paramName == "" || valueName == "" || len(descLines) == 0 {
			valueName = ""
			descLines = nil
			return
		}

		nd := byParent[headerLine]
		if nd == nil {
			nd = &NestedDescription{Parent: headerLine}
			byParent[headerLine] = nd
			results = append(results, nd)
		}

		var block *ParameterBlock
		for _, p := range nd.Parameters {
			if p.Name == paramName {
				block = p
				break
			}
		}
		if block == nil {
			block = &ParameterBlock{Name: paramName}
			nd.Parameters = append(nd.Parameters, block)
		}

		block.Values = append(block.Values, &ValueDescription{
			Name:        valueName,
			Description: strings.TrimSpace(strings.Join(descLines, "\n")),
		})
		valueName = ""
		descLines = nil
	}

	closeBlock := func() {
		flushValue()
		inParams = false
		paramIndent = -1
		valuesIndent = -1
		valueIndent = -1
		paramName = ""
	}

	scanner := bufio.NewScanner(strings.NewReader(blueprint))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if headingRe.MatchString(line) {
			closeBlock()
			if strings.Contains(line, "[") {
				headerLine = line
			}
			continue
		}

		if !inParams {
			if line == "+ Parameters" {
				inParams = true
			}
			continue
		}

		if blankRe.MatchString(line) {
			continue
		}

		indent := indentOf(line)

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			content := strings.TrimSpace(m[1])

			if paramIndent == -1 {
				paramIndent = indent
			}

			switch {
			case indent == paramIndent:
				flushValue()
				paramName = bulletToken(content)
				valuesIndent = -1
				valueIndent = -1

			case content == "Values" || content == "Members":
				flushValue()
				valuesIndent = indent
				valueIndent = -1

			case valuesIndent != -1 && indent > valuesIndent:
				if valueIndent == -1 {
					valueIndent = indent
				}
				if indent == valueIndent {
					flushValue()
					valueName = bulletToken(content)
				} else {
					// Bullet content inside a value description.
					descLines = append(descLines, content)
				}
			}
			continue
		}

		// Plain text: description of the current value when nested
		// beneath it, otherwise the end of the Parameters block.
		if valueName != "" && valueIndent != -1 && indent > valueIndent {
			descLines = append(descLines, strings.TrimSpace(line))
			continue
		}
		closeBlock()
	}
	closeBlock()

	return results
}

func bulletToken(content string) string {
	token := content
	if i := strings.IndexAny(token, " \t"); i >= 0 {
		token = token[:i]
	}
	token = strings.Trim(token, "`")
	return strings.TrimSuffix(token, ":")
}

func indentOf(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
