package nav

import "kartabogor.or.id/web/internal/content"

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href  string
	Label string
	// Section is the fragment target, rendered as data-section; empty for
	// non-fragment hrefs.
	Section string
}

// Build renders navigation entries in declaration order. The same slice backs
// the header menu and the footer column so both keep identical ordering.
func Build(entries []content.NavEntry) []RenderedItem {
	items := make([]RenderedItem, 0, len(entries))
	for _, e := range entries {
		id, _ := e.Fragment()
		items = append(items, RenderedItem{
			Href:    e.Href,
			Label:   e.Label,
			Section: id,
		})
	}
	return items
}

// Home is the brand link target.
func Home(sections content.SectionSet) string {
	if sections.Has(content.SectionHome) {
		return "#" + content.SectionHome
	}
	if ids := sections.IDs(); len(ids) > 0 {
		return "#" + ids[0]
	}
	return "#"
}
