// Package page renders the single-page site. Rendering is two-pass when the
// self-check panel is enabled: the page is rendered without the panel, its
// visible text is evaluated, and the page is rendered again with the results
// composed after the content sections.
package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"kartabogor.or.id/web/internal/content"
	"kartabogor.or.id/web/internal/nav"
	"kartabogor.or.id/web/internal/observability"
	"kartabogor.or.id/web/internal/selfcheck"
	"kartabogor.or.id/web/templates"
)

const baseTemplate = "base"

var tracer = otel.Tracer("kartabogor.or.id/web/internal/page")

// Options configures a Renderer.
type Options struct {
	// Templates overrides the embedded templates.
	Templates fs.FS
	// DevDir, when set together with DevMode, reparses templates from disk on every render.
	DevDir  string
	DevMode bool
	// SelfCheckPanel composes the diagnostic panel into the page.
	SelfCheckPanel bool
	BaseURL        string
	// Now defaults to time.Now; used for the footer year.
	Now func() time.Time
}

// Renderer renders the page for a fixed content model.
type Renderer struct {
	site      content.Site
	sections  content.SectionSet
	aboutHTML template.HTML
	opts      Options
	tmpl      *template.Template
}

// New validates site, prepares derived content and parses templates once unless
// dev mode is on.
func New(site content.Site, opts Options) (*Renderer, error) {
	if err := content.Validate(site); err != nil {
		return nil, err
	}
	about, err := content.RenderMarkdown(site.About.Body)
	if err != nil {
		return nil, err
	}
	if opts.Templates == nil {
		opts.Templates = templates.FS
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	r := &Renderer{
		site:      site.Clone(),
		sections:  site.SectionSet(),
		aboutHTML: about,
		opts:      opts,
	}
	if !r.devMode() {
		t, err := parseTemplates(opts.Templates)
		if err != nil {
			return nil, err
		}
		r.tmpl = t
	} else if _, err := parseTemplates(os.DirFS(opts.DevDir)); err != nil {
		// fail fast on a broken template tree even in dev mode
		return nil, err
	}
	return r, nil
}

func (r *Renderer) devMode() bool {
	return r.opts.DevMode && r.opts.DevDir != ""
}

// Site returns a copy of the content model being rendered.
func (r *Renderer) Site() content.Site { return r.site.Clone() }

// Sections returns the valid anchor targets.
func (r *Renderer) Sections() content.SectionSet { return r.sections }

// SelfCheckPanel reports whether the panel is composed into the page.
func (r *Renderer) SelfCheckPanel() bool { return r.opts.SelfCheckPanel }

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"icon": icon,
	}
	t, err := template.New("_root").Funcs(funcMap).ParseFS(fsys, templates.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if t.Lookup(baseTemplate) == nil {
		return nil, errors.New("parse templates: base layout not defined")
	}
	return t, nil
}

func (r *Renderer) templates() (*template.Template, error) {
	if r.devMode() {
		return parseTemplates(os.DirFS(r.opts.DevDir))
	}
	if r.tmpl == nil {
		return nil, errors.New("template not initialized")
	}
	return r.tmpl, nil
}

func (r *Renderer) data() Data {
	return Data{
		Lang:      "id",
		SEO:       buildSEO(r.site, r.opts.BaseURL),
		Site:      r.site,
		AboutHTML: r.aboutHTML,
		HomeHref:  nav.Home(r.sections),
		Nav:       nav.Build(r.site.Nav),
		Year:      r.opts.Now().Year(),
	}
}

// Render writes the complete page to w. Nothing is written when rendering fails.
func (r *Renderer) Render(ctx context.Context, w io.Writer) error {
	ctx, span := tracer.Start(ctx, "page.Render")
	defer span.End()

	t, err := r.templates()
	if err != nil {
		span.RecordError(err)
		return err
	}
	data := r.data()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		span.RecordError(err)
		return fmt.Errorf("template exec: %w", err)
	}

	if r.opts.SelfCheckPanel {
		report := r.evaluate(ctx, buf.Bytes())
		data.SelfCheck = newSelfCheckView(report)
		buf.Reset()
		if err := t.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
			span.RecordError(err)
			return fmt.Errorf("template exec: %w", err)
		}
	}
	span.SetAttributes(
		attribute.Int("page.bytes", buf.Len()),
		attribute.Bool("page.selfcheck_panel", r.opts.SelfCheckPanel),
	)

	_, err = w.Write(buf.Bytes())
	return err
}

// Report renders the page without the panel and evaluates the self-check against it.
func (r *Renderer) Report(ctx context.Context) (selfcheck.Report, error) {
	t, err := r.templates()
	if err != nil {
		return selfcheck.Report{}, err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, baseTemplate, r.data()); err != nil {
		return selfcheck.Report{}, fmt.Errorf("template exec: %w", err)
	}
	return r.evaluate(ctx, buf.Bytes()), nil
}

func (r *Renderer) evaluate(ctx context.Context, rendered []byte) selfcheck.Report {
	report := selfcheck.EvaluateDocument(ctx, r.site.Nav, r.sections, bytes.NewReader(rendered))
	logger := observability.FromContext(ctx)
	if report.Failed > 0 {
		failed := make([]string, 0, report.Failed)
		for _, res := range report.Results {
			if !res.Pass {
				failed = append(failed, res.Name)
			}
		}
		logger.Warn("self-check failed", zap.Int("failed", report.Failed), zap.Strings("checks", failed))
	} else {
		logger.Debug("self-check passed", zap.Int("passed", report.Passed))
	}
	return report
}
