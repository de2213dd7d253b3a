package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultNavTargetsKnownSections(t *testing.T) {
	t.Parallel()

	sections := DefaultSections()
	for _, entry := range DefaultNav() {
		id, ok := entry.Fragment()
		require.True(t, ok, "href %q must be a fragment", entry.Href)
		require.True(t, sections.Has(id), "href %q must target a known section", entry.Href)
	}
}

func TestDefaultNavHasNoProgramEntry(t *testing.T) {
	t.Parallel()

	for _, entry := range DefaultNav() {
		require.NotEqual(t, "#programs", entry.Href)
		require.NotEqual(t, "Program", entry.Label)
	}
}

func TestDefaultNavOrder(t *testing.T) {
	t.Parallel()

	var labels []string
	for _, entry := range DefaultNav() {
		labels = append(labels, entry.Label)
	}
	require.Equal(t, []string{"Tentang", "Pengurus", "Galeri", "Kontak"}, labels)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Nav[0].Label = "Program"
	a.Contact.Entries = nil

	b := Default()
	require.Equal(t, "Tentang", b.Nav[0].Label)
	require.Len(t, b.Contact.Entries, 2)
}

func TestSectionSetKeepsOrderAndDropsDuplicates(t *testing.T) {
	t.Parallel()

	s := NewSectionSet("home", "about", " ", "home", "team")
	require.Equal(t, []string{"home", "about", "team"}, s.IDs())
	require.True(t, s.Has("about"))
	require.False(t, s.Has("programs"))
	require.False(t, SectionSet{}.Has("home"))
}

func TestParseOverridesAndKeepsDefaults(t *testing.T) {
	t.Parallel()

	site, err := Parse([]byte(`
hero:
  badge: "Bersama Membangun Desa"
nav:
  - label: Tentang
    href: "#about"
  - label: Kontak
    href: "#contact"
`))
	require.NoError(t, err)
	require.Equal(t, "Bersama Membangun Desa", site.Hero.Badge)
	require.Equal(t, "Karang Taruna", site.Hero.Title, "unset keys keep defaults")
	require.Len(t, site.Nav, 2)
	require.Len(t, site.Team.Members, 6)
}

func TestParseRejectsUnknownSection(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
nav:
  - label: Program
    href: "#programs"
  - label: ""
    href: "about"
`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	require.Equal(t, []string{"nav[0].href", "nav[1].label", "nav[1].href"}, verr.Fields())
}

func TestParseCannotExtendSections(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
sections: [home, about, team, gallery, contact, news]
nav:
  - label: Berita
    href: "#news"
`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	require.Equal(t, []string{"nav[0].href"}, verr.Fields())

	site, err := Parse([]byte("sections: [home]\n"))
	require.NoError(t, err)
	require.Equal(t, DefaultSections().IDs(), site.SectionSet().IDs(), "sections key is ignored")
}

func TestParseRejectsEmptyContact(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
contact:
  entries:
    - label: Email
      value: "  "
      icon: globe
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "contact.entries[0].value")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrNoContentFile)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	site, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), site)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand:\n  name: Karang Taruna Uji\n"), 0o600))

	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Karang Taruna Uji", site.Brand.Name)
}

func TestLoadExampleFile(t *testing.T) {
	t.Parallel()

	site, err := Load("../../content/site.example.yaml")
	require.NoError(t, err)
	require.Equal(t, "https://kartabogor.or.id", site.Brand.SiteURL)
	require.Equal(t, DefaultNav(), site.Nav, "nav is not overridden by the example")
	require.Len(t, site.Contact.Entries, 2)
	require.Equal(t, IconPhone, site.Contact.Entries[1].Icon)
	require.Contains(t, site.About.Body, "**organisasi kepemudaan**")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("Halo **warga**<script>alert(1)</script> [desa](https://example.org)")
	require.NoError(t, err)
	html := string(out)
	require.Contains(t, html, "<strong>warga</strong>")
	require.NotContains(t, html, "<script>")
	require.True(t, strings.Contains(html, `rel="nofollow"`), "links must carry nofollow: %s", html)
}
