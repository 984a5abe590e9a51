// Package report renders an extracted status catalog as a sectioned report.
//
// Plain reproduces the fixed text layout existing report consumers parse.
// Terminal and JSON are additional presentations of the same sections.
package report

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dkoosis/innostat/pkg/status"
)

// Renderer converts a catalog to formatted output.
type Renderer interface {
	Render(cat *status.Catalog) string
}

// Options are shared by all renderers.
type Options struct {
	// SourceFile, when set, adds a "parsing local file" preamble.
	SourceFile string
	Logger     *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Plain renders the fixed-layout text report.
type Plain struct {
	opts Options
}

// NewPlain creates a plain renderer.
func NewPlain(opts Options) *Plain {
	return &Plain{opts: opts}
}

// Render formats the whole report. Output is a pure function of the catalog
// and the renderer options.
func (p *Plain) Render(cat *status.Catalog) string {
	var sb strings.Builder

	if p.opts.SourceFile != "" {
		sb.WriteString(Spacer())
		sb.WriteString(`parsing local file "` + p.opts.SourceFile + `"` + "\n")
	}

	sb.WriteString(Spacer())
	sb.WriteString(Header())
	sb.WriteString(Title(ReportTitle))
	sb.WriteString(Header())
	sb.WriteString(Separator())

	for _, s := range Sections(cat, p.opts.logger()) {
		sb.WriteString(Title(s.Title))
		for _, line := range s.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString(Separator())
	}
	return sb.String()
}
