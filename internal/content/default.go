package content

import "fmt"

// Section ids used as in-page anchor targets.
const (
	SectionHome    = "home"
	SectionAbout   = "about"
	SectionTeam    = "team"
	SectionGallery = "gallery"
	SectionContact = "contact"
)

// pageSections mirrors the section ids in templates/partials, in page order.
var pageSections = NewSectionSet(SectionHome, SectionAbout, SectionTeam, SectionGallery, SectionContact)

const (
	heroImageURL    = "https://images.unsplash.com/photo-1521335751419-603f61523713?q=80&w=1400&auto=format&fit=crop"
	memberPhotoURL  = "https://source.unsplash.com/collection/895539/96x96?sig=%d"
	galleryPhotoURL = "https://images.unsplash.com/photo-1520975938055-1b3c6c790a88?q=80&w=1200&auto=format&fit=crop&sig=%d"
	galleryTiles    = 8
)

var teamRoles = []string{"Ketua", "Wakil", "Sekretaris", "Bendahara", "Humas", "Kreatif"}

// defaultSite is built once at package init and never mutated; Default hands out clones.
var defaultSite = buildDefault()

// Default returns the built-in content of the page.
func Default() Site {
	return defaultSite.Clone()
}

// DefaultNav returns the built-in navigation entries in menu order.
func DefaultNav() []NavEntry {
	return append([]NavEntry(nil), defaultSite.Nav...)
}

// DefaultSections returns the built-in section id set.
func DefaultSections() SectionSet {
	return pageSections
}

func buildDefault() Site {
	members := make([]Member, 0, len(teamRoles))
	for i, role := range teamRoles {
		members = append(members, Member{
			Name:     "Nama Pengurus",
			Role:     role,
			PhotoURL: fmt.Sprintf(memberPhotoURL, i),
		})
	}
	photos := make([]Photo, 0, galleryTiles)
	for i := 0; i < galleryTiles; i++ {
		photos = append(photos, Photo{
			URL: fmt.Sprintf(galleryPhotoURL, i),
			Alt: "Galeri",
		})
	}

	return Site{
		Brand: Brand{
			Mark:    "KT",
			Name:    "Karang Taruna Dusun Bogor",
			Tagline: "Desa Kenteng · Bandungan",
			Address: "Desa Kenteng · Kec. Bandungan · Kab. Semarang",
		},
		Nav: []NavEntry{
			{Label: "Tentang", Href: "#" + SectionAbout},
			{Label: "Pengurus", Href: "#" + SectionTeam},
			{Label: "Galeri", Href: "#" + SectionGallery},
			{Label: "Kontak", Href: "#" + SectionContact},
		},
		Hero: Hero{
			Badge:       "Pemuda Tangguh · Desa Maju",
			Title:       "Karang Taruna",
			TitleAccent: "Dusun Bogor",
			Lead: "Wadah pengembangan generasi muda Dusun Bogor untuk berkarya, berdaya, " +
				"dan berkontribusi nyata bagi masyarakat.",
			ImageURL: heroImageURL,
			ImageAlt: "Pemuda Dusun Bogor",
		},
		About: About{
			Heading: "Tentang Kami",
			Body: "Karang Taruna Dusun Bogor adalah organisasi kepemudaan di bawah binaan " +
				"pemerintah desa yang berfokus pada pengembangan karakter, ekonomi kreatif, " +
				"dan kegiatan sosial kemasyarakatan. Kami berkolaborasi dengan warga, UMKM, " +
				"sekolah, dan lembaga desa untuk menciptakan ekosistem pemuda yang aktif dan produktif.",
			Highlights: []string{
				"Pembinaan kapasitas pemuda",
				"Penguatan ekonomi kreatif lokal",
				"Gerakan sosial dan lingkungan",
			},
		},
		Team: Team{
			Heading: "Pengurus",
			Members: members,
		},
		Gallery: Gallery{
			Heading: "Galeri Kegiatan",
			Photos:  photos,
		},
		Contact: Contact{
			Heading: "Kontak",
			Intro:   "Silakan hubungi sekretariat melalui alamat atau telepon berikut.",
			Entries: []ContactEntry{
				{Label: "Sekretariat", Value: "Balai Dusun Bogor, Desa Kenteng, Kec. Bandungan, Kab. Semarang", Icon: IconMapPin},
				{Label: "Telepon", Value: "+62 8xx-xxxx-xxxx", Icon: IconPhone},
			},
			Social: []SocialLink{
				{Label: "Facebook", Href: "#", Icon: IconFacebook, Hover: "hover:bg-blue-50"},
				{Label: "Instagram", Href: "#", Icon: IconInstagram, Hover: "hover:bg-pink-50"},
				{Label: "Website", Href: "#", Icon: IconGlobe, Hover: "hover:bg-slate-50"},
			},
		},
		Footer: Footer{
			NavHeading: "Navigasi",
		},
	}
}
