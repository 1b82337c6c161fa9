package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader_ActionForm(t *testing.T) {
	key, err := ParseHeader("Name [GET /a/b]")
	require.NoError(t, err)

	assert.Equal(t, "Name", key.Name)
	assert.Equal(t, "GET", key.Method)
	assert.Equal(t, "/a/b", key.URITemplate)
}

func TestParseHeader_ResourceForm(t *testing.T) {
	key, err := ParseHeader("Name [/a/b]")
	require.NoError(t, err)

	assert.Equal(t, "Name", key.Name)
	assert.Empty(t, key.Method)
	assert.Equal(t, "/a/b", key.URITemplate)
}

func TestParseHeader_StripsHeadingMarkers(t *testing.T) {
	key, err := ParseHeader("### Retrieve Place [GET /places/{id}]")
	require.NoError(t, err)

	assert.Equal(t, "Retrieve Place", key.Name)
	assert.Equal(t, "GET", key.Method)
	assert.Equal(t, "/places/{id}", key.URITemplate)
}

func TestParseHeader_Malformed(t *testing.T) {
	_, err := ParseHeader("## Just a heading")
	assert.Error(t, err)
}

func testDocument() *Document {
	return &Document{
		ResourceGroups: []*ResourceGroup{
			{
				Name: "Places",
				Resources: []*Resource{
					{
						Name:        "Place",
						URITemplate: "/places/{id}",
						Actions: []*Action{
							{
								Name:       "Retrieve Place",
								Method:     "GET",
								Attributes: ActionAttributes{URITemplate: "/places/{id}"},
							},
						},
					},
				},
			},
		},
	}
}

func TestResolve_Action(t *testing.T) {
	doc := testDocument()

	resource, action := doc.Resolve(&HeaderKey{
		Name:        "Retrieve Place",
		Method:      "GET",
		URITemplate: "/places/{id}",
	})

	assert.Nil(t, resource)
	require.NotNil(t, action)
	assert.Equal(t, "Retrieve Place", action.Name)
}

func TestResolve_Resource(t *testing.T) {
	doc := testDocument()

	resource, action := doc.Resolve(&HeaderKey{Name: "Place", URITemplate: "/places/{id}"})

	assert.Nil(t, action)
	require.NotNil(t, resource)
	assert.Equal(t, "Place", resource.Name)
}

func TestResolve_Miss(t *testing.T) {
	doc := testDocument()

	resource, action := doc.Resolve(&HeaderKey{Name: "Nope", URITemplate: "/nope"})
	assert.Nil(t, resource)
	assert.Nil(t, action)
}

func TestLiteral_UnmarshalBothForms(t *testing.T) {
	var node ContentNode
	require.NoError(t, node.Name.UnmarshalJSON([]byte(`"Plain"`)))
	assert.Equal(t, "Plain", node.Name.Literal)

	require.NoError(t, node.Name.UnmarshalJSON([]byte(`{"literal":"Wrapped"}`)))
	assert.Equal(t, "Wrapped", node.Name.Literal)
}
