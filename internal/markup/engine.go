package markup

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"specdoc/internal/encoding"
)

// Engine converts description markdown into HTML. Tables are enabled as
// an extension; fenced code blocks are part of goldmark's CommonMark
// core, so together the engine covers the extension set descriptions
// rely on.
type Engine struct {
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
}

type Option func(*Engine)

// WithSanitizer strips unsafe markup from the rendered HTML. Templates
// inject rendered descriptions unescaped, so documents from untrusted
// sources should enable this.
func WithSanitizer() Option {
	return func(e *Engine) {
		e.sanitize = bluemonday.UGCPolicy()
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
			// Descriptions may embed literal HTML; it passes through
			// unless a sanitizer is configured.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render converts markdown text to HTML. Legacy-encoded input is
// transcoded first instead of failing the conversion.
func (e *Engine) Render(text string) (string, error) {
	decoded := encoding.DecodeText([]byte(text))

	var buf bytes.Buffer
	if err := e.md.Convert([]byte(decoded), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}

	out := buf.String()
	if e.sanitize != nil {
		out = e.sanitize.Sanitize(out)
	}
	return out, nil
}
