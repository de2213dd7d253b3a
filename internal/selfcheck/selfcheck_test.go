package selfcheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kartabogor.or.id/web/internal/content"
)

func passes(results []Result) []bool {
	out := make([]bool, len(results))
	for i, r := range results {
		out[i] = r.Pass
	}
	return out
}

func TestEvaluateCleanTextAllPass(t *testing.T) {
	t.Parallel()

	text := "Karang Taruna Dusun Bogor\nTentang Kami\nKontak\nSilakan hubungi sekretariat"
	results := Evaluate(content.DefaultNav(), content.DefaultSections(), text)

	require.Len(t, results, 5)
	require.Equal(t, []bool{true, true, true, true, true}, passes(results))
}

func TestEvaluatePreservesCheckOrder(t *testing.T) {
	t.Parallel()

	names := Names()
	results := Evaluate(content.DefaultNav(), content.DefaultSections(), "")
	require.Len(t, names, 5)
	for i, r := range results {
		require.Equal(t, names[i], r.Name)
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	t.Parallel()

	names := Names()
	want := names[0]
	names[0] = "diubah"
	require.Equal(t, want, Names()[0])
	require.Equal(t, want, Evaluate(content.DefaultNav(), content.DefaultSections(), "")[0].Name)
}

func TestEvaluateHeroButtonTextFailsOnlyThatCheck(t *testing.T) {
	t.Parallel()

	results := Evaluate(content.DefaultNav(), content.DefaultSections(), "Lihat Program Unggulan kami")
	require.Equal(t, []bool{true, true, true, false, true}, passes(results))

	results = Evaluate(content.DefaultNav(), content.DefaultSections(), "Kontak Kami")
	require.Equal(t, []bool{true, true, true, false, true}, passes(results))
}

func TestEvaluateContactButtonText(t *testing.T) {
	t.Parallel()

	results := Evaluate(content.DefaultNav(), content.DefaultSections(), "Kirim Email ke sekretariat")
	require.Equal(t, []bool{true, true, true, true, false}, passes(results))
}

func TestEvaluateProgramsAnchorText(t *testing.T) {
	t.Parallel()

	results := Evaluate(content.DefaultNav(), content.DefaultSections(), "lihat #programs")
	require.Equal(t, []bool{true, true, false, true, true}, passes(results))
}

func TestEvaluateEmptyTextUsesNavOnly(t *testing.T) {
	t.Parallel()

	nav := []content.NavEntry{
		{Label: "Program", Href: "#programs"},
		{Label: "Tentang", Href: "#about"},
	}
	results := Evaluate(nav, content.DefaultSections(), "")
	require.Equal(t, []bool{false, false, true, true, true}, passes(results))

	results = Evaluate(content.DefaultNav(), content.DefaultSections(), "")
	require.Equal(t, []bool{true, true, true, true, true}, passes(results))
}

func TestEvaluateNavChecksAreIndependent(t *testing.T) {
	t.Parallel()

	// Known section, forbidden label.
	nav := []content.NavEntry{{Label: "Program", Href: "#about"}}
	require.Equal(t, []bool{false, true, true, true, true}, passes(Evaluate(nav, content.DefaultSections(), "")))

	// Allowed label, unknown section and a non-fragment href.
	nav = []content.NavEntry{{Label: "Berita", Href: "#news"}}
	require.Equal(t, []bool{true, false, true, true, true}, passes(Evaluate(nav, content.DefaultSections(), "")))
	nav = []content.NavEntry{{Label: "Tentang", Href: "about"}}
	require.Equal(t, []bool{true, false, true, true, true}, passes(Evaluate(nav, content.DefaultSections(), "")))
}

func TestEvaluateDoesNotMutateNav(t *testing.T) {
	t.Parallel()

	nav := content.DefaultNav()
	before := append([]content.NavEntry(nil), nav...)
	_ = Evaluate(nav, content.DefaultSections(), "Program Unggulan")
	require.Equal(t, before, nav)
}

func TestRunFailsClosedWithoutText(t *testing.T) {
	t.Parallel()

	results := Run(Input{Nav: content.DefaultNav(), Sections: content.DefaultSections()})
	require.Equal(t, []bool{true, true, false, false, false}, passes(results))
}

func TestRunOneRecoversPanics(t *testing.T) {
	t.Parallel()

	c := Check{Name: "boom", Eval: func(Input) bool { panic("boom") }}
	require.False(t, runOne(c, Input{TextOK: true}))
	require.False(t, runOne(Check{Name: "nil"}, Input{TextOK: true}))
}

func TestReportCounts(t *testing.T) {
	t.Parallel()

	r := NewReport([]Result{{Name: "a", Pass: true}, {Name: "b"}, {Name: "c", Pass: true}})
	require.Equal(t, 2, r.Passed)
	require.Equal(t, 1, r.Failed)
	require.False(t, r.OK())
	require.False(t, NewReport(nil).OK())
}

func TestVisibleTextSkipsHiddenMarkup(t *testing.T) {
	t.Parallel()

	doc := `<!doctype html><html><head><title>Program Unggulan</title></head><body>
<nav><a href="#programs">Tentang</a></nav>
<section id="about"><h2>Tentang   Kami</h2><p>Pemuda <strong>aktif</strong></p></section>
<script>var s = "Kirim Email";</script>
<div hidden>Kontak Kami</div>
<section data-selfcheck-panel><span>Tidak ada tombol 'Program Unggulan'</span></section>
</body></html>`

	text, err := VisibleText(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "Tentang\nTentang Kami\nPemuda aktif", text)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("closed") }

func TestEvaluateDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	nav, sections := content.DefaultNav(), content.DefaultSections()

	report := EvaluateDocument(ctx, nav, sections, strings.NewReader(`<body><p>Kontak</p></body>`))
	require.True(t, report.OK())
	require.Equal(t, 5, report.Passed)

	report = EvaluateDocument(ctx, nav, sections, strings.NewReader(`<body><a>WhatsApp Sekretariat</a></body>`))
	require.Equal(t, []bool{true, true, true, true, false}, passes(report.Results))

	report = EvaluateDocument(ctx, nav, sections, failingReader{})
	require.Equal(t, []bool{true, true, false, false, false}, passes(report.Results))

	report = EvaluateDocument(ctx, nav, sections, nil)
	require.Equal(t, 3, report.Failed)
}
