package render

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// Paginator drives the external HTML-to-PDF engine. The engine loads
// the rendered cover and body pages in its own browser runtime, builds
// a table of contents from the headings, and paginates the result.
type Paginator struct {
	Binary string
}

func NewPaginator(binary string) *Paginator {
	if binary == "" {
		binary = "wkhtmltopdf"
	}
	return &Paginator{Binary: binary}
}

// The engine only snapshots the page once the DOM is fully loaded.
const readyScript = `setInterval(function(){if (document.readyState === "complete") window.status = "done";}, 100)`

// Paginate combines the cover and body pages into a PDF at dstPath.
func (p *Paginator) Paginate(ctx context.Context, coverPath, bodyPath, dstPath string) error {
	args := []string{
		"-d", "125",
		"--page-size", "A4",
		"cover", coverPath,
		"toc",
		"page", bodyPath,
		"--footer-center", "Page [page]",
		"--footer-font-size", "8",
		"--footer-spacing", "3",
		"--run-script", readyScript,
		"--window-status", "done",
		dstPath,
	}

	cmd := exec.CommandContext(ctx, p.Binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pdf pagination failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	log.Debug().Str("output", dstPath).Msg("paginated document")
	return nil
}
