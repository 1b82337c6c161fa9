package enrich

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"specdoc/internal/ast"
	"specdoc/internal/metadata"
)

var (
	bracketLinkRe = regexp.MustCompile(`\[([^\(\)\[\]]*)\]\(([^\(\)\[\]]*)\)`)
	autoLinkRe    = regexp.MustCompile(`<(https?://[^>\s]+)>`)
)

// collectReferenceLinks walks every description and body field in the
// tree and aggregates the links found there, in document order, as a
// flat list on the root. Three notations contribute: markdown bracket
// links, angle-bracket autolinks and already-rendered anchor tags.
func collectReferenceLinks(doc *ast.Document) error {
	links := []*ast.Link{}
	collect := func(text string) {
		links = append(links, linksFromText(text)...)
	}

	collect(doc.Description)

	if doc.APIMetadata != nil {
		doc.APIMetadata.Walk(func(s *metadata.Section) {
			collect(s.Body)
		})
	}

	for _, group := range doc.ResourceGroups {
		collect(group.Description)
		for _, resource := range group.Resources {
			collect(resource.Description)
			for _, action := range resource.Actions {
				collect(action.Description)
				for _, example := range action.Examples {
					for _, request := range example.Requests {
						collect(request.Description)
					}
					for _, response := range example.Responses {
						collect(response.Description)
					}
				}
			}
		}
	}

	doc.ReferenceLinks = links
	return nil
}

// linksFromText finds every link in one text field: bracket links and
// autolinks by pattern, anchors by parsing the text as an HTML fragment.
func linksFromText(text string) []*ast.Link {
	var links []*ast.Link

	for _, m := range bracketLinkRe.FindAllStringSubmatch(text, -1) {
		links = append(links, &ast.Link{Title: m[1], URL: m[2]})
	}

	for _, m := range autoLinkRe.FindAllStringSubmatch(text, -1) {
		links = append(links, &ast.Link{Title: m[1], URL: m[1]})
	}

	links = append(links, anchorLinks(text)...)
	return links
}

func anchorLinks(text string) []*ast.Link {
	if !strings.Contains(text, "<a ") {
		return nil
	}

	fragment, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// Unparseable text contributes nothing.
		return nil
	}

	var links []*ast.Link
	fragment.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return
		}
		links = append(links, &ast.Link{Title: sel.Text(), URL: href})
	})
	return links
}
