package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creatorlens/influencer-studio/internal/db"
	"github.com/creatorlens/influencer-studio/internal/extract"
	"github.com/creatorlens/influencer-studio/internal/insights"
	"github.com/creatorlens/influencer-studio/internal/onboarding"
	"github.com/creatorlens/influencer-studio/internal/openai"
	"github.com/creatorlens/influencer-studio/internal/qloo"
	"github.com/creatorlens/influencer-studio/internal/sounds"
)

// InsightGenerator builds the insight bundle for a completed profile.
type InsightGenerator interface {
	Generate(ctx context.Context, niche, audience string) *insights.Bundle
}

// TasteGraph serves the audience geography panel.
type TasteGraph interface {
	CountryInsights(ctx context.Context, contentCategory, audienceType string) *qloo.CountryInsights
	TrendingTopics(ctx context.Context, countryCode, contentCategory, audienceType string) *qloo.RegionTrends
}

// StrategyProvider serves the on-demand dashboard panels backed by the
// general LLM.
type StrategyProvider interface {
	GrowthStrategy(ctx context.Context, profile map[string]string) string
	PredictViralPotential(ctx context.Context, contentIdea string, audience map[string]string, trends []string) openai.ViralPrediction
}

// SoundFinder serves the trending-sound and brand-collaboration panels.
type SoundFinder interface {
	Trending(ctx context.Context, platform, region, category string, limit int) []sounds.Sound
	Search(ctx context.Context, platform, keyword string, limit int) []sounds.Sound
	BrandCollaborations(ctx context.Context, category, audience, platform string, limit int) []extract.Brand
}

// AnalysisRecorder persists completed analyses. Nil disables persistence.
type AnalysisRecorder interface {
	Create(ctx context.Context, analysis *db.Analysis) error
	Recent(ctx context.Context, limit int) ([]db.Analysis, error)
}

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	sessions  *SessionStore
	templates *Templates
	insights  InsightGenerator
	taste     TasteGraph
	strategy  StrategyProvider
	sounds    SoundFinder
	analyses  AnalysisRecorder
	status    APIStatus
}

// NewHandlers creates a new Handlers instance. analyses may be nil when no
// database is configured.
func NewHandlers(sessions *SessionStore, templates *Templates, generator InsightGenerator, taste TasteGraph, strategy StrategyProvider, finder SoundFinder, analyses AnalysisRecorder, status APIStatus) *Handlers {
	return &Handlers{
		sessions:  sessions,
		templates: templates,
		insights:  generator,
		taste:     taste,
		strategy:  strategy,
		sounds:    finder,
		analyses:  analyses,
		status:    status,
	}
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	session := h.sessionOrCreate(w, r)

	data := HomePageData{
		PageData: PageData{
			Title:       "Influencer Research Studio",
			CurrentPath: r.URL.Path,
			Status:      h.status,
		},
		Greeting:   onboarding.Greeting,
		Transcript: session.Flow.Transcript(),
		Analyzed:   session.Analyzed(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "home", data); err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// ChatSubmit accepts one onboarding answer (POST /chat). The fourth answer
// completes the profile and triggers the single insight aggregation.
func (h *Handlers) ChatSubmit(w http.ResponseWriter, r *http.Request) {
	session := h.sessionOrCreate(w, r)

	message := strings.TrimSpace(r.FormValue("message"))
	if message == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, done, err := session.Flow.Submit(message)
	if err != nil {
		// Conversation already finished; the dashboard has the results.
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if !done {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	profile, _ := session.Flow.Profile()
	bundle := h.insights.Generate(r.Context(), profile.Niche, profile.Audience)
	h.sessions.SetAnalysis(session.ID, profile, bundle)

	geo := h.taste.CountryInsights(r.Context(), profile.Niche, profile.Audience)
	var topics *qloo.RegionTrends
	if top := topCountry(geo); top != "" {
		topics = h.taste.TrendingTopics(r.Context(), top, profile.Niche, profile.Audience)
	}
	h.sessions.SetGeography(session.ID, geo, topics)

	if h.analyses != nil {
		analysis := &db.Analysis{
			Niche:    profile.Niche,
			Audience: profile.Audience,
			Platform: profile.Platform,
			Goal:     profile.Goal,
			Bundle:   *bundle,
		}
		if err := h.analyses.Create(r.Context(), analysis); err != nil {
			slog.Warn("saving analysis failed", "error", err)
		}
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Dashboard renders the research dashboard (GET /dashboard).
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil || !session.Analyzed() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := DashboardPageData{
		PageData: PageData{
			Title:       "Research Dashboard",
			CurrentPath: r.URL.Path,
			Status:      h.status,
		},
		Profile:     session.Profile,
		Bundle:      session.Bundle,
		Geography:   session.Geography,
		Topics:      session.Topics,
		Viral:       session.Viral,
		Strategy:    session.Strategy,
		Sounds:      session.Sounds,
		SoundGroups: session.SoundGroups,
		Brands:      session.Brands,
		Saved:       h.analyses != nil,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "dashboard", data); err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// PredictViral scores a content idea (POST /dashboard/viral).
func (h *Handlers) PredictViral(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil || !session.Analyzed() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	idea := strings.TrimSpace(r.FormValue("idea"))
	if idea == "" {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	// The structured trend slice is authoritative for the dashboard, but the
	// prediction prompt can still lean on trends mentioned in the insight
	// prose when that slice came back empty.
	trends := session.Bundle.GlobalTrends
	if len(trends) == 0 {
		trends = extract.TrendList(session.Bundle.Insights)
	}

	prediction := h.strategy.PredictViralPotential(r.Context(), idea, profileMap(session.Profile), trends)
	h.sessions.SetViral(session.ID, &prediction)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// GrowthStrategy generates the audience growth panel (POST /dashboard/strategy).
func (h *Handlers) GrowthStrategy(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil || !session.Analyzed() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	strategy := h.strategy.GrowthStrategy(r.Context(), profileMap(session.Profile))
	h.sessions.SetStrategy(session.ID, strategy)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// SoundSearch fills the trending-sounds panel (POST /dashboard/sounds).
// A keyword searches the catalog; an empty keyword lists trending sounds
// for the creator's niche.
func (h *Handlers) SoundSearch(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil || !session.Analyzed() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	platform := strings.TrimSpace(r.FormValue("platform"))
	if platform == "" {
		platform = session.Profile.Platform
	}
	if platform == "" {
		platform = "tiktok"
	}

	keyword := strings.TrimSpace(r.FormValue("keyword"))

	var results []sounds.Sound
	if keyword != "" {
		results = h.sounds.Search(r.Context(), platform, keyword, 10)
	} else {
		results = h.sounds.Trending(r.Context(), platform, "", session.Profile.Niche, 10)
	}

	groups, outliers := sounds.GroupByMomentum(results, sounds.DefaultMomentumConfig())
	if len(outliers) > 0 {
		groups = append(groups, sounds.MomentumGroup{Label: "Ungrouped", Sounds: outliers})
	}
	h.sessions.SetSounds(session.ID, results, groups)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// BrandSearch fills the brand-collaboration panel (POST /dashboard/brands).
func (h *Handlers) BrandSearch(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil || !session.Analyzed() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		category = session.Profile.Niche
	}

	brands := h.sounds.BrandCollaborations(r.Context(), category, session.Profile.Audience, session.Profile.Platform, 5)
	h.sessions.SetBrands(session.ID, brands)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// NewAnalysis discards the conversation and results (POST /analysis/new).
func (h *Handlers) NewAnalysis(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session != nil {
		h.sessions.ResetAnalysis(session.ID)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Analyses lists recently saved analyses (GET /analyses).
func (h *Handlers) Analyses(w http.ResponseWriter, r *http.Request) {
	if h.analyses == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	recent, err := h.analyses.Recent(r.Context(), 10)
	if err != nil {
		slog.Warn("listing analyses failed", "error", err)
	}

	data := AnalysesPageData{
		PageData: PageData{
			Title:       "Saved Analyses",
			CurrentPath: r.URL.Path,
			Status:      h.status,
		},
		Analyses: recent,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "analyses", data); err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// sessionOrCreate returns the request's session, starting one for new
// visitors.
func (h *Handlers) sessionOrCreate(w http.ResponseWriter, r *http.Request) *Session {
	if session := h.sessions.GetFromRequest(r); session != nil {
		return session
	}

	session := h.sessions.Create()
	h.sessions.SetCookie(w, session)
	return session
}

// topCountry picks the highest-relevance country code from a geography
// result, with a lexical tie-break so the choice is stable.
func topCountry(geo *qloo.CountryInsights) string {
	if geo == nil {
		return ""
	}

	var best string
	var bestScore float64
	for code, score := range geo.Countries {
		if score.RelevanceScore > bestScore || (score.RelevanceScore == bestScore && (best == "" || code < best)) {
			best = code
			bestScore = score.RelevanceScore
		}
	}
	return best
}

// profileMap flattens a profile into the key/value form the strategy
// prompts embed.
func profileMap(p onboarding.Profile) map[string]string {
	return map[string]string{
		"niche":           p.Niche,
		"target_audience": p.Audience,
		"platform":        p.Platform,
		"goal":            p.Goal,
	}
}
