package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree_SiblingAndChildDepths(t *testing.T) {
	stream := strings.Join([]string{
		"# First",
		"first body",
		"## First Child",
		"child body",
		"## Second Child",
		"# Second",
		"second body",
	}, "\n") + "\n"

	root := BuildTree(stream)

	require.Len(t, root.Subsections, 2)
	first, second := root.Subsections[0], root.Subsections[1]

	assert.Equal(t, "First", first.Name)
	assert.Equal(t, "first", first.ID)
	assert.Equal(t, "first body\n", first.Body)
	require.Len(t, first.Subsections, 2)
	assert.Equal(t, "First Child", first.Subsections[0].Name)
	assert.Equal(t, "child body\n", first.Subsections[0].Body)
	assert.Empty(t, first.Subsections[1].Subsections)

	assert.Equal(t, "Second", second.Name)
	assert.Empty(t, second.Subsections)
}

func TestBuildTree_DepthPattern1221(t *testing.T) {
	stream := "# A\n## B\n## C\n# D\n"

	root := BuildTree(stream)

	require.Len(t, root.Subsections, 2)
	assert.Len(t, root.Subsections[0].Subsections, 2)
	assert.Len(t, root.Subsections[1].Subsections, 0)
}

func TestBuildTree_ShallowerHeadingClosesSubtree(t *testing.T) {
	stream := "# A\n### Deep\n## Mid\n# B\n"

	root := BuildTree(stream)

	require.Len(t, root.Subsections, 2)
	a := root.Subsections[0]
	require.Len(t, a.Subsections, 2)
	assert.Equal(t, "Deep", a.Subsections[0].Name)
	assert.Equal(t, "Mid", a.Subsections[1].Name)
}

func TestBuildTree_CollapsesHeadingWhitespace(t *testing.T) {
	root := BuildTree("##   Spaced    Out  \n")

	require.Len(t, root.Subsections, 1)
	assert.Equal(t, "Spaced Out", root.Subsections[0].Name)
	assert.Equal(t, "spaced-out", root.Subsections[0].ID)
}

func TestBuildTree_EmptyStream(t *testing.T) {
	root := BuildTree("")

	assert.Empty(t, root.Name)
	assert.Empty(t, root.Body)
	assert.Empty(t, root.Subsections)
}

func TestSectionLookup(t *testing.T) {
	root := BuildTree("# Editors\n## Alice\n")

	editors := root.Lookup("Editors")
	require.NotNil(t, editors)
	assert.NotNil(t, editors.Lookup("Alice"))
	assert.Nil(t, root.Lookup("Nope"))
}
