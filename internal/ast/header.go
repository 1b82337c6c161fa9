package ast

import (
	"fmt"
	"regexp"
	"strings"
)

// HeaderKey identifies the AST node a markdown-style header refers to.
// It is the join key between the blueprint stream and the parsed tree:
// `Name [GET /a/b]` names an action, `Name [/a/b]` names a resource.
type HeaderKey struct {
	Name        string
	Method      string
	URITemplate string
}

var (
	actionHeaderRe   = regexp.MustCompile(`^(.*) \[(\w*) (.*)\]`)
	resourceHeaderRe = regexp.MustCompile(`^(.*) \[(.*)\]`)
)

// ParseHeader extracts the identity key from a resource or action
// header line. Heading markers and surrounding whitespace are ignored.
func ParseHeader(header string) (*HeaderKey, error) {
	header = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(header), "#"))
	header = strings.TrimSpace(header)

	if m := actionHeaderRe.FindStringSubmatch(header); m != nil {
		return &HeaderKey{Name: m[1], Method: m[2], URITemplate: m[3]}, nil
	}
	if m := resourceHeaderRe.FindStringSubmatch(header); m != nil {
		return &HeaderKey{Name: m[1], URITemplate: m[2]}, nil
	}
	return nil, fmt.Errorf("malformed resource or action header: %q", header)
}

// Resolve locates the resource or action the key refers to. Exactly one
// of the return values is non-nil on a hit; both are nil on a miss,
// which callers treat as a quiet skip.
func (d *Document) Resolve(key *HeaderKey) (*Resource, *Action) {
	if key == nil {
		return nil, nil
	}

	if key.Method != "" {
		for _, group := range d.ResourceGroups {
			for _, resource := range group.Resources {
				for _, action := range resource.Actions {
					if action.Name == key.Name &&
						action.Method == key.Method &&
						action.Attributes.URITemplate == key.URITemplate {
						return nil, action
					}
				}
			}
		}
		return nil, nil
	}

	for _, group := range d.ResourceGroups {
		for _, resource := range group.Resources {
			if resource.Name == key.Name && resource.URITemplate == key.URITemplate {
				return resource, nil
			}
		}
	}
	return nil, nil
}
