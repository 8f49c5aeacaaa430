package domain

import "time"

// Domain is a normalized, lowercase website domain. It is the unique key for generation.
type Domain string

func (d Domain) String() string { return string(d) }

// Category is a content theme used to select SEO copy.
type Category string

const (
	CategoryTools         Category = "tools"
	CategorySummaries     Category = "summaries"
	CategoryDev           Category = "dev"
	CategoryHustle        Category = "hustle"
	CategoryExperiments   Category = "experiments"
	CategoryDiscworld     Category = "discworld"
	CategoryWhimsy        Category = "whimsy"
	CategoryTravel        Category = "travel"
	CategoryCommunity     Category = "community"
	CategoryProductivity  Category = "productivity"
	CategoryPersonalBrand Category = "personal_brand"
	CategoryMottoBrand    Category = "motto_brand"
	CategoryGeneric       Category = "generic"
)

// Categories lists every category in classification priority order, generic last.
func Categories() []Category {
	return []Category{
		CategoryTools,
		CategorySummaries,
		CategoryDev,
		CategoryHustle,
		CategoryExperiments,
		CategoryDiscworld,
		CategoryWhimsy,
		CategoryTravel,
		CategoryCommunity,
		CategoryProductivity,
		CategoryPersonalBrand,
		CategoryMottoBrand,
		CategoryGeneric,
	}
}

// TitleNameVar is the placeholder filled with the display name in CopyPack.TitleTemplate.
const TitleNameVar = "name"

// CopyPack is the title/description/keywords bundle associated with a category.
type CopyPack struct {
	// TitleTemplate contains a {{name}} placeholder.
	TitleTemplate string
	Description   string
	// Keywords is a comma-separated keyword string, ready for a meta tag.
	Keywords string
}

// SitePlan is everything the renderer needs to know about one domain.
type SitePlan struct {
	Domain      Domain   `json:"domain"`
	Category    Category `json:"category"`
	DisplayName string   `json:"display_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    string   `json:"keywords"`
}

// FormName is the hosted-form identifier used by both the form and its hidden field.
func (p SitePlan) FormName() string {
	return "newsletter-" + string(p.Domain)
}

// Page is one rendered static document.
type Page struct {
	Name    string
	Content []byte
}

const (
	PageIndex  = "index.html"
	PageThanks = "thanks.html"
)

// RenderedSite groups the pages produced for a single domain.
type RenderedSite struct {
	Plan  SitePlan
	Pages []Page
}

// SiteResult is the outcome of writing one site.
type SiteResult struct {
	Plan  SitePlan `json:"plan"`
	Dir   string   `json:"dir"`
	Files []string `json:"files"`
}

// GenerationRun describes one invocation of the generator.
type GenerationRun struct {
	ID        string       `json:"id"`
	Source    SourceKind   `json:"source"`
	OutputDir string       `json:"output_dir"`
	StartedAt time.Time    `json:"started_at"`
	EndedAt   time.Time    `json:"ended_at"`
	Sites     []SiteResult `json:"sites"`
}
