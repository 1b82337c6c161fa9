package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"specdoc/internal/annotator"
	"specdoc/internal/ast"
	"specdoc/internal/config"
	"specdoc/internal/drafter"
	"specdoc/internal/enrich"
	"specdoc/internal/markup"
	"specdoc/internal/metadata"
	"specdoc/internal/render"
	"specdoc/internal/splitter"
)

// RenderJob converts one specification file into an HTML page or a
// PDF. Intermediate artifacts (the blueprint stream, the parser's AST,
// PDF cover and body pages) live in a per-job work directory that is
// cleared on completion unless KeepTempDir is set.
type RenderJob struct {
	Config       *config.Config
	SpecPath     string
	OutputDir    string
	TemplatePath string
	PDF          bool
	KeepTempDir  bool
}

type splitResult struct {
	Name          string // spec file name without extension
	BlueprintPath string
	Metadata      string
	Blueprint     string
}

func NewRenderJob(cfg *config.Config, specPath, outputDir string) *RenderJob {
	return &RenderJob{
		Config:    cfg,
		SpecPath:  specPath,
		OutputDir: outputDir,
	}
}

func (j *RenderJob) Run(ctx context.Context) error {
	workDir, err := j.workspaceStage()
	if err != nil {
		return fmt.Errorf("failed to prepare work directory: %w", err)
	}
	defer j.cleanupStage(workDir)

	streams, err := j.splitStage(workDir)
	if err != nil {
		return err
	}

	doc, err := j.parseStage(ctx, workDir, streams)
	if err != nil {
		return err
	}

	if err := j.enrichStage(doc, streams); err != nil {
		return err
	}

	if j.PDF {
		return j.pdfStage(ctx, workDir, doc, streams.Name)
	}
	return j.renderStage(doc, streams.Name, j.OutputDir)
}

func (j *RenderJob) workspaceStage() (string, error) {
	if err := os.MkdirAll(j.Config.Render.TempDir, 0o755); err != nil {
		return "", err
	}
	return os.MkdirTemp(j.Config.Render.TempDir, "job-")
}

func (j *RenderJob) splitStage(workDir string) (*splitResult, error) {
	result, err := splitter.SplitFile(j.SpecPath)
	if err != nil {
		return nil, fmt.Errorf("failed to split %s: %w", j.SpecPath, err)
	}

	name := strings.TrimSuffix(filepath.Base(j.SpecPath), filepath.Ext(j.SpecPath))
	blueprintPath := filepath.Join(workDir, name+".apib")
	if err := os.WriteFile(blueprintPath, []byte(result.Blueprint), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage blueprint: %w", err)
	}

	fmt.Printf("📄 Split %s into blueprint and metadata streams.\n", filepath.Base(j.SpecPath))
	return &splitResult{
		Name:          name,
		BlueprintPath: blueprintPath,
		Metadata:      result.Metadata,
		Blueprint:     result.Blueprint,
	}, nil
}

func (j *RenderJob) parseStage(ctx context.Context, workDir string, streams *splitResult) (*ast.Document, error) {
	astPath := filepath.Join(workDir, streams.Name+".json")
	parser := drafter.NewParser(j.Config.Tools.Drafter)

	doc, err := parser.Parse(ctx, streams.BlueprintPath, astPath)
	if err != nil {
		return nil, err
	}

	fmt.Println("🌳 Parsed blueprint into document tree.")
	return doc, nil
}

func (j *RenderJob) enrichStage(doc *ast.Document, streams *splitResult) error {
	opts := enrich.Options{
		MetadataTree:       metadata.BuildTree(streams.Metadata),
		NestedDescriptions: annotator.Extract(streams.Blueprint),
		IsPDF:              j.PDF,
	}

	codes, err := j.loadCustomCodes()
	if err != nil {
		return err
	}
	opts.CustomCodes = codes

	var engineOpts []markup.Option
	if j.Config.Render.Sanitize {
		engineOpts = append(engineOpts, markup.WithSanitizer())
	}

	if err := enrich.NewPipeline(markup.NewEngine(engineOpts...), opts).Run(doc); err != nil {
		return err
	}

	fmt.Println("✨ Enriched document tree.")
	return nil
}

// loadCustomCodes reads the optional sidecar file declaring custom
// response codes, e.g. spec.codes.json next to spec.apib.
func (j *RenderJob) loadCustomCodes() ([]*annotator.CustomCode, error) {
	base := strings.TrimSuffix(j.SpecPath, filepath.Ext(j.SpecPath))
	path := base + ".codes.json"

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read custom codes: %w", err)
	}

	var codes []*annotator.CustomCode
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("failed to decode custom codes %s: %w", path, err)
	}
	return codes, nil
}

func (j *RenderJob) renderStage(doc *ast.Document, name, dstDir string) error {
	outPath, err := render.New(j.templatePath()).Render(doc, name, dstDir)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Rendered %s\n", outPath)
	return nil
}

func (j *RenderJob) pdfStage(ctx context.Context, workDir string, doc *ast.Document, name string) error {
	renderer := render.New(j.templatePath())

	bodyPath, err := renderer.Render(doc, name, workDir)
	if err != nil {
		return err
	}

	coverPath := filepath.Join(workDir, name+".cover.html")
	if err := renderer.RenderCover(doc, j.Config.Render.CoverTemplate, coverPath); err != nil {
		return err
	}

	if err := os.MkdirAll(j.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	dstPath := filepath.Join(j.OutputDir, name+".pdf")

	paginator := render.NewPaginator(j.Config.Tools.WKHTMLToPDF)
	if err := paginator.Paginate(ctx, coverPath, bodyPath, dstPath); err != nil {
		return err
	}

	fmt.Printf("✅ Rendered %s\n", dstPath)
	return nil
}

// templatePath resolves the body template: an explicit choice wins,
// then the configured per-mode template, then the embedded default.
func (j *RenderJob) templatePath() string {
	if j.TemplatePath != "" {
		return j.TemplatePath
	}
	if j.PDF && j.Config.Render.PDFTemplate != "" {
		return j.Config.Render.PDFTemplate
	}
	return j.Config.Render.Template
}

func (j *RenderJob) cleanupStage(workDir string) {
	if j.KeepTempDir {
		fmt.Printf("🗂  Keeping work directory %s\n", workDir)
		return
	}
	if err := os.RemoveAll(workDir); err != nil {
		fmt.Printf("⚠️  Failed to clear work directory %s: %v\n", workDir, err)
	}
}
