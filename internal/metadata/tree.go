package metadata

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// Section is one node of the metadata tree: a heading plus the raw text
// between it and the next heading. Subsections keep document order and
// always have a strictly greater heading depth than their parent.
type Section struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Body        string     `json:"body"`
	Subsections []*Section `json:"subsections"`
}

// Lookup returns the direct subsection with the given name, or nil.
// The ordered tree is the single source of truth; name access is a
// derived view, not a second materialized copy.
func (s *Section) Lookup(name string) *Section {
	for _, sub := range s.Subsections {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// Walk calls fn for the section and every descendant, in document order.
func (s *Section) Walk(fn func(*Section)) {
	fn(s)
	for _, sub := range s.Subsections {
		sub.Walk(fn)
	}
}

var spaceRunRe = regexp.MustCompile(` +`)

// BuildTree parses the metadata stream into a Section tree rooted at a
// synthetic empty section. The tree is built in one left-to-right pass
// with a frame stack instead of recursion, so deeply nested documents
// cannot exhaust the call stack: a heading of depth d closes every open
// frame of depth >= d and opens a child of the remaining top frame.
func BuildTree(stream string) *Section {
	root := newSection("", "")

	type frame struct {
		section *Section
		depth   int
	}
	stack := []frame{{section: root, depth: 0}}

	scanner := bufio.NewScanner(strings.NewReader(stream))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Section
	var body strings.Builder

	flush := func() {
		if current != nil {
			current.Body = body.String()
		}
		body.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()

		if !strings.HasPrefix(line, "#") {
			if current != nil {
				body.WriteString(line + "\n")
			}
			continue
		}

		flush()

		depth := headingDepth(line)
		section := newSection(headingName(line), "")

		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].section
		parent.Subsections = append(parent.Subsections, section)
		stack = append(stack, frame{section: section, depth: depth})

		current = section
	}
	flush()

	return root
}

func newSection(name, body string) *Section {
	return &Section{
		ID:          slug.Make(name),
		Name:        name,
		Body:        body,
		Subsections: []*Section{},
	}
}

func headingDepth(line string) int {
	depth := 0
	for depth < len(line) && line[depth] == '#' {
		depth++
	}
	return depth
}

func headingName(line string) string {
	name := strings.TrimSpace(strings.TrimLeft(line, "#"))
	return spaceRunRe.ReplaceAllString(name, " ")
}
