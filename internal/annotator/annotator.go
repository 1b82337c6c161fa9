package annotator

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"specdoc/internal/ast"
)

// Apply splices extracted nested value descriptions onto the parsed
// document. Enrichment is best-effort: a header, parameter or value
// that no longer resolves against the tree is skipped quietly.
func Apply(doc *ast.Document, descriptions []*NestedDescription) error {
	for _, nd := range descriptions {
		key, err := ast.ParseHeader(nd.Parent)
		if err != nil {
			return fmt.Errorf("nested description parent: %w", err)
		}

		params := resolveParameters(doc, key)
		if params == nil {
			log.Debug().Str("header", nd.Parent).Msg("nested description target not found")
			continue
		}

		for _, block := range nd.Parameters {
			for _, value := range block.Values {
				annotateValue(params, block.Name, value)
			}
		}
	}
	return nil
}

// CustomCode carries an auxiliary payload addressed to a resource or
// action by its markdown header.
type CustomCode struct {
	Parent string
	Codes  any
}

// ApplyCustomCodes attaches custom-code payloads to their parent
// resource or action. Misses are quiet skips, like all enrichment.
func ApplyCustomCodes(doc *ast.Document, codes []*CustomCode) error {
	for _, code := range codes {
		key, err := ast.ParseHeader(code.Parent)
		if err != nil {
			return fmt.Errorf("custom code parent: %w", err)
		}

		resource, action := doc.Resolve(key)
		switch {
		case action != nil:
			action.CustomCodes = code.Codes
		case resource != nil:
			resource.CustomCodes = code.Codes
		default:
			log.Debug().Str("header", code.Parent).Msg("custom code target not found")
		}
	}
	return nil
}

func resolveParameters(doc *ast.Document, key *ast.HeaderKey) []*ast.Parameter {
	resource, action := doc.Resolve(key)
	switch {
	case action != nil:
		return action.Parameters
	case resource != nil:
		return resource.Parameters
	default:
		return nil
	}
}

func annotateValue(params []*ast.Parameter, paramName string, value *ValueDescription) {
	var target *ast.ParameterValue
	for _, param := range params {
		if param.Name != paramName {
			continue
		}
		for _, pv := range param.Values {
			if pv.Value == value.Name {
				target = pv
			}
		}
	}

	if target != nil {
		target.Description = value.Description
	}
}
