package enrich

import (
	"strings"

	"specdoc/internal/ast"
)

// escapePayloadMarkup escapes '<' in request/response bodies so payloads
// containing markup (XML, HTML) render as text instead of being
// interpreted by the browser. The first content block is escaped too
// when it carries the raw asset rather than nested sections.
func escapePayloadMarkup(doc *ast.Document) error {
	forEachPayload(doc, func(payload *ast.Payload) {
		if payload.Body == "" {
			return
		}
		payload.Body = strings.ReplaceAll(payload.Body, "<", "&lt;")
		if len(payload.Content) > 0 && len(payload.Content[0].Sections) == 0 {
			payload.Content[0].Content = strings.ReplaceAll(payload.Content[0].Content, "<", "&lt;")
		}
	})
	return nil
}

// escapeURIAmpersands escapes '&' inside URI-template values. Templates
// stay literal strings through the renderer, so this is a plain string
// rewrite, normalized first to keep the pass idempotent.
func escapeURIAmpersands(doc *ast.Document) error {
	for _, group := range doc.ResourceGroups {
		for _, resource := range group.Resources {
			resource.URITemplate = escapeAmpersands(resource.URITemplate)
			for _, action := range resource.Actions {
				action.Attributes.URITemplate = escapeAmpersands(action.Attributes.URITemplate)
			}
		}
	}
	return nil
}

func escapeAmpersands(uri string) string {
	uri = strings.ReplaceAll(uri, "&amp;", "&")
	return strings.ReplaceAll(uri, "&", "&amp;")
}

func forEachPayload(doc *ast.Document, fn func(*ast.Payload)) {
	for _, group := range doc.ResourceGroups {
		for _, resource := range group.Resources {
			for _, action := range resource.Actions {
				for _, example := range action.Examples {
					for _, request := range example.Requests {
						fn(request)
					}
					for _, response := range example.Responses {
						fn(response)
					}
				}
			}
		}
	}
}
