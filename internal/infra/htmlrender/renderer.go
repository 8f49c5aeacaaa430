// Package htmlrender renders the landing and acknowledgment pages with
// html/template so every interpolated value is escaped for its context.
package htmlrender

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/ports"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var pageTemplates = []struct {
	page string
	tmpl string
}{
	{domain.PageIndex, "index.html.tmpl"},
	{domain.PageThanks, "thanks.html.tmpl"},
}

// Renderer renders both pages of a site.
type Renderer struct {
	analyticsID string
	footerOwner string
	now         func() time.Time
	tmpl        *template.Template
}

type Option func(*Renderer)

// WithNow overrides the clock used for the footer year (useful for tests).
func WithNow(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

var _ ports.PageRenderer = (*Renderer)(nil)

// New parses the embedded templates. Only the analytics ID and footer owner
// are read from cfg.
func New(cfg domain.Config, opts ...Option) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "htmlrender.parse",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	r := &Renderer{
		analyticsID: cfg.AnalyticsID,
		footerOwner: cfg.FooterOwner,
		now:         time.Now,
		tmpl:        tmpl,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type pageData struct {
	Domain      string
	Title       string
	Description string
	Keywords    string
	FormName    string
	AnalyticsID string
	FooterOwner string
	Year        int
}

func (r *Renderer) Render(plan domain.SitePlan) (domain.RenderedSite, error) {
	data := pageData{
		Domain:      string(plan.Domain),
		Title:       plan.Title,
		Description: plan.Description,
		Keywords:    plan.Keywords,
		FormName:    plan.FormName(),
		AnalyticsID: r.analyticsID,
		FooterOwner: r.footerOwner,
		Year:        r.now().UTC().Year(),
	}

	site := domain.RenderedSite{
		Plan:  plan,
		Pages: make([]domain.Page, 0, len(pageTemplates)),
	}
	for _, pt := range pageTemplates {
		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, pt.tmpl, data); err != nil {
			return domain.RenderedSite{}, &domain.OpError{
				Op:   "htmlrender.render",
				Kind: domain.KindExecution,
				Path: pt.page,
				Err:  err,
			}
		}
		site.Pages = append(site.Pages, domain.Page{Name: pt.page, Content: buf.Bytes()})
	}
	return site, nil
}
