package drafter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DecodesParserOutput(t *testing.T) {
	raw := `{
		"_version": "4.0",
		"name": "Sample API",
		"description": "A sample.",
		"metadata": [{"name": "FORMAT", "value": "1A"}],
		"resourceGroups": [
			{
				"name": "Places",
				"description": "",
				"resources": [
					{
						"name": "Places",
						"uriTemplate": "/places",
						"actions": [
							{"name": "Places", "method": "GET", "attributes": {"uriTemplate": ""}}
						]
					}
				]
			}
		]
	}`

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4.0", doc.Version)
	assert.Equal(t, "Sample API", doc.Name)
	require.Len(t, doc.ResourceGroups, 1)
	require.Len(t, doc.ResourceGroups[0].Resources, 1)
	assert.Equal(t, "/places", doc.ResourceGroups[0].Resources[0].URITemplate)
	require.Len(t, doc.ResourceGroups[0].Resources[0].Actions, 1)
	assert.Equal(t, "GET", doc.ResourceGroups[0].Resources[0].Actions[0].Method)
}

func TestLoad_LiteralObjectNames(t *testing.T) {
	raw := `{
		"_version": "4.0",
		"name": "Sample API",
		"resourceGroups": [],
		"content": [
			{"name": {"literal": "Data Structures"}, "content": [{"name": "Place"}]}
		]
	}`

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Content, 1)
	assert.Equal(t, "Data Structures", doc.Content[0].Name.Literal)
	require.Len(t, doc.Content[0].Content, 1)
	assert.Equal(t, "Place", doc.Content[0].Content[0].Name.Literal)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewParser_DefaultBinary(t *testing.T) {
	assert.Equal(t, "drafter", NewParser("").Binary)
	assert.Equal(t, "/opt/bin/drafter", NewParser("/opt/bin/drafter").Binary)
}
