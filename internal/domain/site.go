package domain

// SectionID identifies a page section; it doubles as the in-page anchor
type SectionID string

const (
	SectionHero     SectionID = "hero"
	SectionServices SectionID = "services"
	SectionAbout    SectionID = "about"
	SectionContact  SectionID = "contact"
)

// Sections lists the page sections in document order
var Sections = []SectionID{SectionHero, SectionServices, SectionAbout, SectionContact}

// Anchor returns the section as an in-page link ("#services")
func (s SectionID) Anchor() string {
	return "#" + string(s)
}

// ParseAnchor accepts "services" or "#services"
func ParseAnchor(anchor string) (SectionID, bool) {
	if len(anchor) > 0 && anchor[0] == '#' {
		anchor = anchor[1:]
	}
	for _, s := range Sections {
		if string(s) == anchor {
			return s, true
		}
	}
	return "", false
}

// IconType selects the glyph drawn on a service card
type IconType string

const (
	IconWeb          IconType = "web"
	IconData         IconType = "data"
	IconOptimization IconType = "optimization"
)

// Service is an offering shown in the services section
type Service struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Icon        IconType `yaml:"icon"`
	Accent      string   `yaml:"accent"` // Hex colour
}

// TeamMember is a founder card in the about section
type TeamMember struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	Specialty string `yaml:"specialty"`
	Bio       string `yaml:"bio"`
}

// NavLink is a header navigation entry
type NavLink struct {
	Label   string    `yaml:"label"`
	Section SectionID `yaml:"section"`
}

// Hero holds the hero section copy. The tagline is rendered as
// Lead + <typed Typed> + Trail.
type Hero struct {
	Title        string `yaml:"title"`
	Lead         string `yaml:"lead"`
	Typed        string `yaml:"typed"`
	Trail        string `yaml:"trail"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
}

// Catalog is the complete static content of the page
type Catalog struct {
	Brand    string       `yaml:"brand"`
	Hero     Hero         `yaml:"hero"`
	Nav      []NavLink    `yaml:"nav"`
	Services []Service    `yaml:"services"`
	About    string       `yaml:"about"` // Markdown
	Team     []TeamMember `yaml:"team"`
	Contact  ContactCopy  `yaml:"contact"`
	Footer   Footer       `yaml:"footer"`
	Visuals  []Visual     `yaml:"visuals"`
}

// ContactCopy holds the contact section text
type ContactCopy struct {
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
	Success string `yaml:"success"`
}

// Footer holds the footer text
type Footer struct {
	Tagline   string `yaml:"tagline"`
	Copyright string `yaml:"copyright"`
	Credits   string `yaml:"credits"`
}

// Visual is a decorative glyph floating around the mascot on the hero stage.
// X and Y are fractions of the stage; Delay staggers its entrance.
type Visual struct {
	Glyph string  `yaml:"glyph"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Delay float64 `yaml:"delay"` // Seconds
	Large bool    `yaml:"large"`
}
