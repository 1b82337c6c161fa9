package enrich

import (
	"fmt"

	"specdoc/internal/ast"
	"specdoc/internal/mson"
)

// parseDataStructures lifts the raw "Data Structures" content block into
// the name-keyed property model the renderer consumes.
func parseDataStructures(doc *ast.Document) error {
	doc.DataStructures = map[string]*ast.DataStructure{}
	if len(doc.Content) == 0 {
		return nil
	}

	category := doc.Content[0]

	// Only a category whose first structure opens with a block
	// description is supported; anything else is left unparsed.
	if len(category.Content) == 0 ||
		len(category.Content[0].Sections) == 0 ||
		category.Content[0].Sections[0].Class != "blockDescription" {
		return nil
	}

	for _, structure := range category.Content {
		attributes := []*mson.Property{}
		if len(structure.Sections) > 0 {
			var err error
			attributes, err = mson.ParseProperties(structure.Sections[0].Content)
			if err != nil {
				return fmt.Errorf("data structure %q: %w", structure.Name.Literal, err)
			}
		}
		doc.DataStructures[structure.Name.Literal] = &ast.DataStructure{Attributes: attributes}
	}

	return nil
}
