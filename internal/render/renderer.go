package render

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"specdoc/internal/ast"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Static asset directories copied next to the rendered page when the
// template directory ships them.
var staticDirs = []string{"css", "js", "img", "font"}

var funcs = template.FuncMap{
	// Descriptions and metadata bodies are already rendered HTML.
	"raw": func(s string) template.HTML { return template.HTML(s) },
}

// Renderer turns an enriched document into a standalone HTML page.
type Renderer struct {
	templatePath string // empty selects the embedded default
}

func New(templatePath string) *Renderer {
	return &Renderer{templatePath: templatePath}
}

// Render writes <name>.html under dstDir and returns its path. When a
// custom template is in use, static asset directories sitting next to
// it are copied alongside the page.
func (r *Renderer) Render(doc *ast.Document, name, dstDir string) (string, error) {
	tmpl, err := r.load("page.tmpl")
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(dstDir, name+".html")
	if err := execute(tmpl, doc, outPath); err != nil {
		return "", err
	}

	if r.templatePath != "" {
		if err := copyStatic(filepath.Dir(r.templatePath), dstDir); err != nil {
			return "", err
		}
	}

	log.Debug().Str("output", outPath).Msg("rendered document")
	return outPath, nil
}

// RenderCover writes the PDF cover page to outPath. An empty
// coverTemplatePath selects the embedded default cover.
func (r *Renderer) RenderCover(doc *ast.Document, coverTemplatePath, outPath string) error {
	var tmpl *template.Template
	var err error
	if coverTemplatePath != "" {
		tmpl, err = template.New(filepath.Base(coverTemplatePath)).Funcs(funcs).ParseFiles(coverTemplatePath)
	} else {
		tmpl, err = template.New("cover.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/cover.tmpl")
	}
	if err != nil {
		return fmt.Errorf("failed to parse cover template: %w", err)
	}
	return execute(tmpl, doc, outPath)
}

func (r *Renderer) load(embeddedName string) (*template.Template, error) {
	if r.templatePath != "" {
		tmpl, err := template.New(filepath.Base(r.templatePath)).Funcs(funcs).ParseFiles(r.templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", r.templatePath, err)
		}
		return tmpl, nil
	}

	tmpl, err := template.New(embeddedName).Funcs(funcs).ParseFS(templateFS, "templates/"+embeddedName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, doc *ast.Document, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, doc); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}

func copyStatic(templateDir, dstDir string) error {
	for _, dir := range staticDirs {
		src := filepath.Join(templateDir, dir)
		info, err := os.Stat(src)
		if err != nil || !info.IsDir() {
			continue
		}

		dst := filepath.Join(dstDir, dir)
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("failed to replace %s: %w", dst, err)
		}
		if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", src, err)
		}
	}
	return nil
}
