package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `FORMAT: 1A
HOST: http://example.com

# Tourist API
Some abstract text.

## Editors
Alice

## Copyright
(c) Example

# REST API

## Place [/places/{id}]
Represents a place.

+ Parameters
    + id (number) - The place (primary) identifier

### Retrieve [GET /places/{id}]
`

func TestSplit_SeparatesStreams(t *testing.T) {
	res := Split(sampleDoc)

	wantMeta := strings.Join([]string{
		"# Tourist API",
		"## Editors",
		"Alice",
		"",
		"## Copyright",
		"(c) Example",
		"",
	}, "\n") + "\n"

	assert.Equal(t, wantMeta, res.Metadata)

	// Front matter and everything from the first blueprint heading on
	// belong to the parser input; the title region belongs to neither.
	assert.True(t, strings.HasPrefix(res.Blueprint, "FORMAT: 1A\nHOST: http://example.com\n# REST API\n"))
	assert.NotContains(t, res.Blueprint, "Some abstract text.")
	assert.NotContains(t, res.Metadata, "Some abstract text.")
	assert.Contains(t, res.Blueprint, "## Place [/places/{id}]")
	assert.Contains(t, res.Blueprint, "### Retrieve [GET /places/{id}]")
}

func TestSplit_EscapesParenthesesInParameterDescriptions(t *testing.T) {
	res := Split(sampleDoc)

	assert.Contains(t, res.Blueprint, "+ id (number) - The place &#40;primary&#41; identifier")
	// Attribute-list parentheses before the dash are syntax and stay.
	assert.NotContains(t, res.Blueprint, "&#40;number&#41;")
}

func TestSplit_ParameterBlockCloses(t *testing.T) {
	doc := "FORMAT: 1A\n\n# API\n\n## Group Machines\n" +
		"+ Parameters\n" +
		"    + state (string) - machine (internal) state\n" +
		"\n" +
		"### Next [POST /next]\n" +
		"+ Parameters\n" +
		"other text - with (parens) outside a block\n"

	res := Split(doc)

	assert.Contains(t, res.Blueprint, "machine &#40;internal&#41; state")
	// The non-bullet line closed the second block before any escaping.
	assert.Contains(t, res.Blueprint, "other text - with (parens) outside a block")
}

func TestSplit_ExpandsTabs(t *testing.T) {
	doc := "FORMAT: 1A\n\n# API\n\n## Group Machines\n\tindented\n"
	res := Split(doc)
	assert.Contains(t, res.Blueprint, "    indented\n")
	assert.NotContains(t, res.Blueprint, "\t")
}

func TestSplit_BlueprintRoundTrip(t *testing.T) {
	// Blueprint-region lines survive byte-for-byte except the two
	// documented transforms; this fixture triggers neither.
	body := []string{
		"## Group Places",
		"Places grouped.",
		"",
		"## Place [/places/{id}]",
	}
	doc := "FORMAT: 1A\n\n# API\n" + strings.Join(body, "\n") + "\n"

	res := Split(doc)
	require.True(t, strings.HasSuffix(res.Blueprint, strings.Join(body, "\n")+"\n"))
}

func TestSplitFile_MissingFile(t *testing.T) {
	_, err := SplitFile("does/not/exist.apib")
	assert.Error(t, err)
}
