package drafter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"specdoc/internal/ast"
)

// Parser invokes the external structural parser over a blueprint file.
// The parser owns the blueprint grammar; this package only shells out
// and decodes the AST it emits.
type Parser struct {
	Binary string
}

func NewParser(binary string) *Parser {
	if binary == "" {
		binary = "drafter"
	}
	return &Parser{Binary: binary}
}

// Parse runs the structural parser on the blueprint file, writing its
// JSON output to astPath, then decodes that output. A non-zero exit of
// the parser aborts the conversion.
func (p *Parser) Parse(ctx context.Context, blueprintPath, astPath string) (*ast.Document, error) {
	cmd := exec.CommandContext(ctx, p.Binary,
		blueprintPath, "--output", astPath, "--format", "json", "--use-line-num")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("structural parser failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	if len(output) > 0 {
		log.Debug().Str("parser", p.Binary).Msg(strings.TrimSpace(string(output)))
	}

	return Load(astPath)
}

// Load decodes a parser-produced AST file.
func Load(path string) (*ast.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parser output: %w", err)
	}

	var doc ast.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode parser output: %w", err)
	}
	return &doc, nil
}
