package enrich

import (
	"regexp"

	"github.com/gosimple/slug"

	"specdoc/internal/ast"
)

// generateIDs assigns a stable anchor id to every resource and action.
// Names are preferred; unnamed entities fall back to their URI template,
// and unnamed actions without a template fall back to the owning
// resource's template (collapsed resource) or name, suffixed with the
// HTTP method to keep sibling actions distinguishable.
func generateIDs(doc *ast.Document) error {
	for _, group := range doc.ResourceGroups {
		for _, resource := range group.Resources {
			if resource.Name != "" {
				resource.ID = "resource_" + slug.Make(resource.Name)
			} else {
				resource.ID = "resource_" + slug.Make(resource.URITemplate)
			}

			for _, action := range resource.Actions {
				switch {
				case action.Name != "":
					action.ID = "action_" + slug.Make(action.Name)
				case action.Attributes.URITemplate != "":
					action.ID = "action_" + slug.Make(action.Attributes.URITemplate)
				case resourceCollapsed(resource):
					action.ID = "action_" + slug.Make(resource.URITemplate+action.Method)
				default:
					action.ID = "action_" + slug.Make(resource.Name+action.Method)
				}
			}
		}
	}
	return nil
}

var spaceRunRe = regexp.MustCompile(` +`)

// collapseSpaces normalizes runs of spaces to one in every name field.
func collapseSpaces(doc *ast.Document) error {
	for _, group := range doc.ResourceGroups {
		group.Name = spaceRunRe.ReplaceAllString(group.Name, " ")
		for _, resource := range group.Resources {
			resource.Name = spaceRunRe.ReplaceAllString(resource.Name, " ")
			for _, action := range resource.Actions {
				action.Name = spaceRunRe.ReplaceAllString(action.Name, " ")
			}
		}
	}
	return nil
}
