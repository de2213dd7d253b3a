package content

import "strings"

// IconRef names an icon from the page's icon set.
type IconRef string

const (
	IconMapPin       IconRef = "map-pin"
	IconPhone        IconRef = "phone"
	IconCheckCircle  IconRef = "check-circle"
	IconChevronRight IconRef = "chevron-right"
	IconFacebook     IconRef = "facebook"
	IconInstagram    IconRef = "instagram"
	IconGlobe        IconRef = "globe"
)

// NavEntry is a single in-page navigation link. Href is always "#" + section id.
type NavEntry struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Fragment returns the section id Href points at, without the leading "#".
// ok is false when Href is not a fragment link.
func (e NavEntry) Fragment() (id string, ok bool) {
	if !strings.HasPrefix(e.Href, "#") {
		return "", false
	}
	return strings.TrimPrefix(e.Href, "#"), true
}

// ContactEntry is a displayed contact method.
type ContactEntry struct {
	Label string  `yaml:"label" json:"label"`
	Value string  `yaml:"value" json:"value"`
	Icon  IconRef `yaml:"icon" json:"icon"`
}

// SocialLink is a decorative outbound link in the contact section.
type SocialLink struct {
	Label string  `yaml:"label"`
	Href  string  `yaml:"href"`
	Icon  IconRef `yaml:"icon"`
	Hover string  `yaml:"hover"`
}

// SectionSet is the fixed collection of valid in-page anchor targets.
// The zero value is empty; build one with NewSectionSet.
type SectionSet struct {
	ids   map[string]struct{}
	order []string
}

// NewSectionSet builds a set from ids, keeping first-seen order.
func NewSectionSet(ids ...string) SectionSet {
	s := SectionSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := s.ids[id]; dup {
			continue
		}
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}
	return s
}

// Has reports whether id names a known section.
func (s SectionSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the section ids in declaration order.
func (s SectionSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of sections.
func (s SectionSet) Len() int { return len(s.order) }

// Brand is the header/footer identity block.
type Brand struct {
	Mark    string `yaml:"mark"`
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Address string `yaml:"address"`
	SiteURL string `yaml:"site_url"`
	LogoURL string `yaml:"logo_url"`
}

// Hero is the top banner.
type Hero struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	TitleAccent string `yaml:"title_accent"`
	Lead        string `yaml:"lead"`
	ImageURL    string `yaml:"image_url"`
	ImageAlt    string `yaml:"image_alt"`
}

// About is the "Tentang Kami" section. Body is markdown.
type About struct {
	Heading    string   `yaml:"heading"`
	Body       string   `yaml:"body"`
	Highlights []string `yaml:"highlights"`
}

// Member is one team roster card.
type Member struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	PhotoURL string `yaml:"photo_url"`
}

// Team is the roster section.
type Team struct {
	Heading string   `yaml:"heading"`
	Members []Member `yaml:"members"`
}

// Photo is one gallery tile.
type Photo struct {
	URL string `yaml:"url"`
	Alt string `yaml:"alt"`
}

// Gallery is the photo grid section.
type Gallery struct {
	Heading string  `yaml:"heading"`
	Photos  []Photo `yaml:"photos"`
}

// Contact is the contact section.
type Contact struct {
	Heading string         `yaml:"heading"`
	Intro   string         `yaml:"intro"`
	Entries []ContactEntry `yaml:"entries"`
	Social  []SocialLink   `yaml:"social"`
}

// Footer holds the footer copy; navigation links come from Site.Nav.
type Footer struct {
	NavHeading string `yaml:"nav_heading"`
}

// Site is the complete content model for the page.
type Site struct {
	Brand   Brand      `yaml:"brand"`
	Nav     []NavEntry `yaml:"nav"`
	Hero    Hero       `yaml:"hero"`
	About   About      `yaml:"about"`
	Team    Team       `yaml:"team"`
	Gallery Gallery    `yaml:"gallery"`
	Contact Contact    `yaml:"contact"`
	Footer  Footer     `yaml:"footer"`
}

// SectionSet returns the anchor targets the templates render. The set is fixed
// at compile time and content overrides cannot change it.
func (s Site) SectionSet() SectionSet {
	return pageSections
}

// Clone returns a deep copy so callers never share slices with the original.
func (s Site) Clone() Site {
	cp := s
	cp.Nav = append([]NavEntry(nil), s.Nav...)
	cp.About.Highlights = append([]string(nil), s.About.Highlights...)
	cp.Team.Members = append([]Member(nil), s.Team.Members...)
	cp.Gallery.Photos = append([]Photo(nil), s.Gallery.Photos...)
	cp.Contact.Entries = append([]ContactEntry(nil), s.Contact.Entries...)
	cp.Contact.Social = append([]SocialLink(nil), s.Contact.Social...)
	return cp
}
