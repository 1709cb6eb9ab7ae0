package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/creatorlens/influencer-studio/internal/db"
	"github.com/creatorlens/influencer-studio/internal/extract"
	"github.com/creatorlens/influencer-studio/internal/insights"
	"github.com/creatorlens/influencer-studio/internal/onboarding"
	"github.com/creatorlens/influencer-studio/internal/openai"
	"github.com/creatorlens/influencer-studio/internal/qloo"
	"github.com/creatorlens/influencer-studio/internal/sounds"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	partials  map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		partials:  make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderPartial renders a partial template (without base layout) with the given data.
func (t *Templates) RenderPartial(w io.Writer, partial string, data any) error {
	tmpl, ok := t.partials[partial]
	if !ok {
		return fmt.Errorf("partial %q not found", partial)
	}
	return tmpl.Execute(w, data)
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := filepath.Base(page)
		name = name[:len(name)-len(".html")]

		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		t.templates[name] = tmpl
	}

	// Load partials as standalone templates for fragment rendering
	for _, partial := range partials {
		name := filepath.Base(partial)
		name = name[:len(name)-len(".html")]

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, partial)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", name, err)
		}
		t.partials[name] = tmpl
	}

	return nil
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// percent renders a 0..1 relevance score as a whole percentage.
		"percent": func(score float64) string {
			return fmt.Sprintf("%.0f%%", score*100)
		},

		// scoreColor returns an HSL color from red (low) to green (high)
		// for an engagement score between 0 and 1.
		"scoreColor": func(score float64) string {
			hue := score * 120
			return fmt.Sprintf("hsl(%.0f, 70%%, 45%%)", hue)
		},

		// formatDate formats a time as "Jan 2, 2006"
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},

		// joinComma joins a string slice with ", "
		"joinComma": func(items []string) string {
			return strings.Join(items, ", ")
		},

		// add adds two integers (for 1-based indexing in loops)
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// APIStatus reports which vendor integrations are configured.
type APIStatus struct {
	TasteGraph bool
	Research   bool
	Strategy   bool
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	CurrentPath string
	Status      APIStatus
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	Greeting   string
	Transcript []onboarding.Message
	Analyzed   bool
}

// DashboardPageData contains data for the dashboard page template.
type DashboardPageData struct {
	PageData
	Profile     onboarding.Profile
	Bundle      *insights.Bundle
	Geography   *qloo.CountryInsights
	Topics      *qloo.RegionTrends
	Viral       *openai.ViralPrediction
	Strategy    string
	Sounds      []sounds.Sound
	SoundGroups []sounds.MomentumGroup
	Brands      []extract.Brand
	Saved       bool
}

// AnalysesPageData contains data for the saved-analyses page template.
type AnalysesPageData struct {
	PageData
	Analyses []db.Analysis
}
