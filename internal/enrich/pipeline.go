package enrich

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"specdoc/internal/annotator"
	"specdoc/internal/ast"
	"specdoc/internal/markup"
	"specdoc/internal/metadata"
)

// Pass is one enrichment step. Passes run in a fixed total order and
// mutate the document in place; several read fields written by earlier
// passes, so the order is part of the contract.
type Pass struct {
	Name string
	Run  func(*ast.Document) error
}

// Options carries the per-conversion inputs the passes close over.
type Options struct {
	MetadataTree       *metadata.Section
	NestedDescriptions []*annotator.NestedDescription
	CustomCodes        []*annotator.CustomCode
	IsPDF              bool
}

// Pipeline owns the ordered pass list for one document conversion.
type Pipeline struct {
	engine *markup.Engine
	passes []Pass
}

func NewPipeline(engine *markup.Engine, opts Options) *Pipeline {
	p := &Pipeline{engine: engine}
	p.passes = []Pass{
		{"merge_metadata", p.mergeMetadata(opts.MetadataTree)},
		{"nested_parameter_descriptions", nestedDescriptions(opts.NestedDescriptions)},
		{"custom_codes", customCodes(opts.CustomCodes)},
		{"render_descriptions", p.renderDescriptions},
		{"data_structures", parseDataStructures},
		{"mark_collapsed_resources", markCollapsedResources},
		{"render_abstract", p.renderAbstract},
		{"escape_payload_markup", escapePayloadMarkup},
		{"escape_uri_ampersands", escapeURIAmpersands},
		{"generate_ids", generateIDs},
		{"collapse_spaces", collapseSpaces},
		{"reference_links", collectReferenceLinks},
		{"pdf_flag", pdfFlag(opts.IsPDF)},
	}
	return p
}

// Run applies every pass in order. The first failing pass aborts the
// conversion; there is no partial-success mode.
func (p *Pipeline) Run(doc *ast.Document) error {
	for _, pass := range p.passes {
		if err := pass.Run(doc); err != nil {
			return fmt.Errorf("%s pass: %w", pass.Name, err)
		}
		log.Debug().Str("pass", pass.Name).Msg("enrichment pass complete")
	}
	return nil
}

func nestedDescriptions(found []*annotator.NestedDescription) func(*ast.Document) error {
	return func(doc *ast.Document) error {
		return annotator.Apply(doc, found)
	}
}

func customCodes(codes []*annotator.CustomCode) func(*ast.Document) error {
	return func(doc *ast.Document) error {
		return annotator.ApplyCustomCodes(doc, codes)
	}
}

func pdfFlag(isPDF bool) func(*ast.Document) error {
	return func(doc *ast.Document) error {
		doc.IsPDF = isPDF
		return nil
	}
}
