package selfcheck

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"kartabogor.or.id/web/internal/content"
)

// PanelAttr marks the panel's own markup; VisibleText skips it so the check
// names never match their own patterns.
const PanelAttr = "data-selfcheck-panel"

var tracer = otel.Tracer("kartabogor.or.id/web/internal/selfcheck")

// VisibleText returns the text a reader would see in the document body:
// script, style, template, noscript and svg content, hidden elements and the
// self-check panel are skipped. Block boundaries become newlines.
func VisibleText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("selfcheck: parse document: %w", err)
	}
	var b strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			writeText(&b, n)
		}
	})
	return collapse(b.String()), nil
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipElement(n) {
			return
		}
	}
	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

func skipElement(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template, atom.Noscript, atom.Svg, atom.Head:
		return true
	}
	for _, a := range n.Attr {
		switch a.Key {
		case PanelAttr, "hidden":
			return true
		}
	}
	return false
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Br, atom.Div,
		atom.Footer, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Header,
		atom.Li, atom.Main, atom.Nav, atom.Ol, atom.P, atom.Section, atom.Ul:
		return true
	}
	return false
}

// collapse normalizes whitespace within lines and drops blank lines.
func collapse(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// EvaluateDocument extracts the visible text of an HTML document and runs every
// check. When the document cannot be read, text-dependent checks fail closed.
func EvaluateDocument(ctx context.Context, nav []content.NavEntry, sections content.SectionSet, doc io.Reader) Report {
	_, span := tracer.Start(ctx, "selfcheck.EvaluateDocument")
	defer span.End()

	in := Input{Nav: nav, Sections: sections}
	if doc != nil {
		text, err := VisibleText(doc)
		if err != nil {
			span.RecordError(err)
		} else {
			in.Text, in.TextOK = text, true
		}
	}
	report := NewReport(Run(in))
	span.SetAttributes(
		attribute.Int("selfcheck.passed", report.Passed),
		attribute.Int("selfcheck.failed", report.Failed),
		attribute.Bool("selfcheck.text_ok", in.TextOK),
	)
	return report
}
