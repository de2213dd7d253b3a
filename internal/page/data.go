package page

import (
	"html/template"

	"kartabogor.or.id/web/internal/content"
	"kartabogor.or.id/web/internal/nav"
	"kartabogor.or.id/web/internal/selfcheck"
	"kartabogor.or.id/web/internal/seo"
)

// Data is the view model for the page layout.
type Data struct {
	Lang      string
	SEO       seo.Meta
	Site      content.Site
	AboutHTML template.HTML
	HomeHref  string
	// Nav backs both the header menu and the footer column.
	Nav  []nav.RenderedItem
	Year int
	// SelfCheck is nil on the first render pass and when the panel is disabled.
	SelfCheck *SelfCheckView
}

// SelfCheckView is the payload of the diagnostic panel.
type SelfCheckView struct {
	Results []selfcheck.Result
	Passed  int
	Failed  int
}

func newSelfCheckView(r selfcheck.Report) *SelfCheckView {
	return &SelfCheckView{Results: r.Results, Passed: r.Passed, Failed: r.Failed}
}

func buildSEO(site content.Site, baseURL string) seo.Meta {
	title := site.Brand.Name
	if site.Brand.Tagline != "" {
		title += " – " + site.Brand.Tagline
	}
	description := site.Hero.Lead
	canonical := ""
	if baseURL != "" {
		canonical = baseURL + "/"
	}

	var sameAs []string
	for _, s := range site.Contact.Social {
		if s.Href != "" && s.Href != "#" {
			sameAs = append(sameAs, s.Href)
		}
	}
	siteURL := site.Brand.SiteURL
	if siteURL == "" {
		siteURL = canonical
	}

	return seo.Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Title:       title,
			Description: description,
			Image:       site.Hero.ImageURL,
			Type:        "website",
			URL:         canonical,
			SiteName:    site.Brand.Name,
			Locale:      "id_ID",
		},
		Twitter: seo.Twitter{
			Card:  "summary_large_image",
			Image: site.Hero.ImageURL,
		},
		JSONLD: []template.JS{
			seo.JSON(seo.Organization(site.Brand.Name, siteURL, site.Brand.LogoURL, site.Brand.Address, sameAs)),
			seo.JSON(seo.WebPage(title, description, canonical)),
		},
	}
}
