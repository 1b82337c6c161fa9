package mson

import (
	"fmt"
	"regexp"
	"strings"
)

// Property is one parsed member declaration of a data structure.
// Subproperties hold members declared under greater indentation;
// Values hold enumerated values when a declaration carries them.
type Property struct {
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Type          string           `json:"type,omitempty"`
	Required      bool             `json:"required"`
	Subproperties []*Property      `json:"subproperties"`
	Values        []*PropertyValue `json:"values"`
}

// PropertyValue is an enumerated value of a property.
type PropertyValue struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Attribute-list tokens that describe the member rather than its type.
var reservedAttributes = map[string]bool{
	"required": true,
	"optional": true,
	"fixed":    true,
	"sample":   true,
	"default":  true,
}

// Captures the member name, the parenthesized attribute list and the
// free-text description after the dash.
var declarationRe = regexp.MustCompile(
	`^[ ]*[-+][ ](?P<name>\w+)[ ]*(?:[[: ][\w, ]*]?[ ]*\((?P<attributes>[\w\W ]+)\))?[ ]*(?:[-](?P<description>[ \w\W]+))?$`,
)

// ParseDeclaration parses a single property member declaration line.
// A line that does not carry the member pattern with an attribute list
// is malformed input and aborts the conversion.
func ParseDeclaration(line string) (*Property, error) {
	match := declarationRe.FindStringSubmatch(line)
	if match == nil {
		return nil, fmt.Errorf("malformed property declaration: %q", line)
	}

	groups := map[string]string{}
	for i, name := range declarationRe.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}
	if groups["attributes"] == "" {
		return nil, fmt.Errorf("property declaration %q has no attribute list", strings.TrimSpace(line))
	}

	prop := &Property{
		Name:          groups["name"],
		Description:   strings.TrimSpace(groups["description"]),
		Subproperties: []*Property{},
		Values:        []*PropertyValue{},
	}

	for _, attribute := range strings.Split(groups["attributes"], ",") {
		attribute = strings.TrimSpace(attribute)
		if !reservedAttributes[attribute] {
			prop.Type = attribute
			continue
		}
		if attribute == "required" {
			prop.Required = true
		}
	}

	return prop, nil
}

// ParseProperties parses the body of one data structure into its member
// tree. Indentation drives nesting: the first non-blank line fixes the
// sibling indentation, deeper lines become subproperties of the most
// recently parsed member, and a shallower line ends the sibling list
// without being consumed.
func ParseProperties(body string) ([]*Property, error) {
	cur := &lineCursor{lines: strings.Split(body, "\n")}
	return parseSiblings(cur)
}

type lineCursor struct {
	lines []string
	pos   int
}

func parseSiblings(cur *lineCursor) ([]*Property, error) {
	props := []*Property{}
	indent := -1

	for cur.pos < len(cur.lines) {
		line := cur.lines[cur.pos]
		if strings.TrimSpace(line) == "" {
			cur.pos++
			continue
		}

		lineIndent := indentation(line)
		if indent == -1 {
			indent = lineIndent
		}

		switch {
		case lineIndent == indent:
			prop, err := ParseDeclaration(line)
			if err != nil {
				return nil, err
			}
			cur.pos++
			props = append(props, prop)

		case lineIndent > indent:
			subs, err := parseSiblings(cur)
			if err != nil {
				return nil, err
			}
			last := props[len(props)-1]
			last.Subproperties = append(last.Subproperties, subs...)

		default:
			// Belongs to an ancestor's sibling list; leave it be.
			return props, nil
		}
	}

	return props, nil
}

func indentation(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
