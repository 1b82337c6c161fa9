package annotator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specdoc/internal/ast"
)

const nestedBlueprint = `## Place [/places/{id}]

### Search Places [GET /places{?type}]

+ Parameters
    + type (string, optional) - type of place
        + Values
            + ` + "`restaurant`" + `
                A place where meals are served.
                Reservations recommended.
            + ` + "`museum`" + `

## Group Other
`

func TestExtract_NestedValueDescriptions(t *testing.T) {
	found := Extract(nestedBlueprint)

	require.Len(t, found, 1)
	nd := found[0]
	assert.Equal(t, "### Search Places [GET /places{?type}]", nd.Parent)

	require.Len(t, nd.Parameters, 1)
	param := nd.Parameters[0]
	assert.Equal(t, "type", param.Name)

	require.Len(t, param.Values, 1)
	assert.Equal(t, "restaurant", param.Values[0].Name)
	assert.Equal(t,
		"A place where meals are served.\nReservations recommended.",
		param.Values[0].Description)
}

func TestExtract_NoDescriptions(t *testing.T) {
	blueprint := strings.Join([]string{
		"### List [GET /things]",
		"",
		"+ Parameters",
		"    + limit (number, optional) - page size",
		"",
	}, "\n")

	assert.Empty(t, Extract(blueprint))
}

func searchDocument() *ast.Document {
	return &ast.Document{
		ResourceGroups: []*ast.ResourceGroup{
			{
				Resources: []*ast.Resource{
					{
						Name:        "Place",
						URITemplate: "/places/{id}",
						Actions: []*ast.Action{
							{
								Name:       "Search Places",
								Method:     "GET",
								Attributes: ast.ActionAttributes{URITemplate: "/places{?type}"},
								Parameters: []*ast.Parameter{
									{
										Name: "type",
										Values: []*ast.ParameterValue{
											{Value: "restaurant"},
											{Value: "museum"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestApply_SplicesDescription(t *testing.T) {
	doc := searchDocument()

	err := Apply(doc, Extract(nestedBlueprint))
	require.NoError(t, err)

	values := doc.ResourceGroups[0].Resources[0].Actions[0].Parameters[0].Values
	assert.Contains(t, values[0].Description, "meals are served")
	assert.Empty(t, values[1].Description)
}

func TestApply_MissIsQuiet(t *testing.T) {
	doc := searchDocument()

	err := Apply(doc, []*NestedDescription{
		{
			Parent: "### Unknown [DELETE /nope]",
			Parameters: []*ParameterBlock{
				{Name: "type", Values: []*ValueDescription{{Name: "restaurant", Description: "x"}}},
			},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, doc.ResourceGroups[0].Resources[0].Actions[0].Parameters[0].Values[0].Description)
}

func TestApplyCustomCodes(t *testing.T) {
	doc := searchDocument()

	codes := []*CustomCode{
		{Parent: "### Search Places [GET /places{?type}]", Codes: []string{"290"}},
		{Parent: "### Gone [PUT /gone]", Codes: []string{"500"}},
	}
	require.NoError(t, ApplyCustomCodes(doc, codes))

	action := doc.ResourceGroups[0].Resources[0].Actions[0]
	assert.Equal(t, []string{"290"}, action.CustomCodes)
}

func TestApplyCustomCodes_Resource(t *testing.T) {
	doc := searchDocument()

	codes := []*CustomCode{{Parent: "## Place [/places/{id}]", Codes: "note"}}
	require.NoError(t, ApplyCustomCodes(doc, codes))

	assert.Equal(t, "note", doc.ResourceGroups[0].Resources[0].CustomCodes)
}
