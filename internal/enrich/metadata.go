package enrich

import (
	"specdoc/internal/ast"
	"specdoc/internal/metadata"
)

// mergeMetadata attaches the metadata tree to the document, rendering
// every section body to HTML on the way in. Subsections keep document
// order; by-name access goes through the tree's derived lookup rather
// than a second materialized map.
func (p *Pipeline) mergeMetadata(tree *metadata.Section) func(*ast.Document) error {
	return func(doc *ast.Document) error {
		if tree == nil {
			doc.APIMetadata = metadata.BuildTree("")
			return nil
		}

		var renderErr error
		tree.Walk(func(s *metadata.Section) {
			if renderErr != nil {
				return
			}
			rendered, err := p.engine.Render(s.Body)
			if err != nil {
				renderErr = err
				return
			}
			s.Body = rendered
		})
		if renderErr != nil {
			return renderErr
		}

		doc.APIMetadata = tree
		return nil
	}
}
