package enrich

import "specdoc/internal/ast"

// renderDescriptions converts the free-text description of every
// resource group, resource and action to HTML. Request and response
// descriptions stay raw; only reference-link collection reads those.
func (p *Pipeline) renderDescriptions(doc *ast.Document) error {
	for _, group := range doc.ResourceGroups {
		if err := p.renderInto(&group.Description); err != nil {
			return err
		}
		for _, resource := range group.Resources {
			if err := p.renderInto(&resource.Description); err != nil {
				return err
			}
			for _, action := range resource.Actions {
				if err := p.renderInto(&action.Description); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// renderAbstract converts the document-level description. It must run
// before reference-link collection, which reads the rendered form.
func (p *Pipeline) renderAbstract(doc *ast.Document) error {
	return p.renderInto(&doc.Description)
}

func (p *Pipeline) renderInto(field *string) error {
	rendered, err := p.engine.Render(*field)
	if err != nil {
		return err
	}
	*field = rendered
	return nil
}
