package enrich

import "specdoc/internal/ast"

// resourceCollapsed reports whether a resource is really a bare action
// declared without an enclosing resource heading: the parser then
// synthesizes a resource whose single action shares its name. Both the
// TOC marking and the id fallback read this predicate directly, so the
// two passes stay reorderable.
func resourceCollapsed(r *ast.Resource) bool {
	return len(r.Actions) == 1 && r.Actions[0].Name == r.Name
}

// markCollapsedResources flags collapsed resources so the renderer can
// leave them out of the table of contents. The resource itself is kept.
func markCollapsedResources(doc *ast.Document) error {
	for _, group := range doc.ResourceGroups {
		for _, resource := range group.Resources {
			resource.IgnoreTOC = resourceCollapsed(resource)
		}
	}
	return nil
}
