package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/swedensai/seo-website/internal/components"
	"github.com/swedensai/seo-website/internal/dashboard"
	"github.com/swedensai/seo-website/internal/flash"
	"github.com/swedensai/seo-website/internal/signup"
	"github.com/swedensai/seo-website/pkg/apperror"
	"github.com/swedensai/seo-website/pkg/logger"
	"github.com/swedensai/seo-website/pkg/seoapi"
)

var Module = fx.Module("handlers",
	fx.Provide(
		NewErrorHandler,
		NewHandlers,
	),
)

const healthCheckTimeout = 3 * time.Second

// Handlers serves the website pages and dashboard actions.
type Handlers struct {
	dashboard *dashboard.Service
	signup    *signup.Service
	api       *seoapi.Client
	errors    *apperror.ErrorHandler
	log       *slog.Logger
}

// NewErrorHandler creates the error handler that renders failures inside
// the site layout.
func NewErrorHandler(log *slog.Logger) *apperror.ErrorHandler {
	return apperror.NewErrorHandler(log.With(logger.Scope("http")), RenderError)
}

func NewHandlers(d *dashboard.Service, s *signup.Service, api *seoapi.Client, eh *apperror.ErrorHandler, log *slog.Logger) *Handlers {
	return &Handlers{
		dashboard: d,
		signup:    s,
		api:       api,
		errors:    eh,
		log:       log.With(logger.Scope("handlers")),
	}
}

// RenderError writes err as an HTML page.
func RenderError(w http.ResponseWriter, r *http.Request, err *apperror.Error) {
	page := components.Layout(
		components.PageConfig{Title: fmt.Sprintf("%d - SwedensAi", err.HTTPStatus)},
		navState(r),
		components.ErrorPage(err.HTTPStatus, err.Message),
	)
	writePage(w, err.HTTPStatus, page)
}

func navState(r *http.Request) components.NavState {
	return navAt(r, r.URL.Path)
}

// navAt builds the navigation for a page that lives at path. Form posts
// use it so the menu links back to the GET route they render.
func navAt(r *http.Request, path string) components.NavState {
	return components.NavState{
		Active:   path,
		MenuOpen: r.URL.Query().Get("menu") == "open",
	}
}

func writePage(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = page.Render(w)
}

// page renders content in the layout and shows any pending flash message.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request, status int, cfg components.PageConfig, content g.Node) {
	h.pageAt(w, r, status, cfg, navState(r), content)
}

func (h *Handlers) pageAt(w http.ResponseWriter, r *http.Request, status int, cfg components.PageConfig, nav components.NavState, content g.Node) {
	cfg.Flash = flash.Pop(w, r)
	writePage(w, status, components.Layout(cfg, nav, content))
}

func (h *Handlers) Landing(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, components.PageConfig{}, components.LandingPage())
}

func (h *Handlers) Service(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, components.PageConfig{
		Title:       "How It Works - SwedensAi",
		Description: "Our AI checks your website, competitors, and keywords.",
	}, components.ServicePage())
}

// ---------------------------------------------------------------------------
// Pricing & signup
// ---------------------------------------------------------------------------

const pricingPath = "/pricing"

var pricingConfig = components.PageConfig{
	Title:       "Pricing - SwedensAi",
	Description: "You get monthly reports + content ideas. Plans from €199/month.",
}

// Pricing handles GET /pricing. ?plan= preselects a plan.
func (h *Handlers) Pricing(w http.ResponseWriter, r *http.Request) {
	form := signup.NewForm(r.URL.Query().Get("plan"))
	h.page(w, r, http.StatusOK, pricingConfig, components.PricingPage(form, flash.Message{}))
}

// SelectPlan handles POST /pricing/plan, sent by the plan card buttons. It
// re-renders the form with the chosen plan and the values typed so far.
func (h *Handlers) SelectPlan(w http.ResponseWriter, r *http.Request) error {
	form, err := signup.ParseForm(r)
	if err != nil {
		return apperror.NewBadRequest("Could not read the signup form").WithInternal(err)
	}
	form = form.WithPlan(r.PostForm.Get(components.SelectPlanField))
	h.pageAt(w, r, http.StatusOK, pricingConfig, navAt(r, pricingPath), components.PricingPage(form, flash.Message{}))
	return nil
}

// Signup handles POST /pricing.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) error {
	form, err := signup.ParseForm(r)
	if err != nil {
		return apperror.NewBadRequest("Could not read the signup form").WithInternal(err)
	}

	out := h.signup.Submit(r.Context(), form)
	if out.Redirect() {
		flash.Redirect(w, r, "/dashboard", out.Notice)
		return nil
	}

	status := http.StatusOK
	if out.Result == signup.ResultRejected {
		status = http.StatusUnprocessableEntity
	}
	h.pageAt(w, r, status, pricingConfig, navAt(r, pricingPath), components.PricingPage(form, out.Notice))
	return nil
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

var dashboardConfig = components.PageConfig{
	Title:       "SEO Dashboard - SwedensAi",
	Description: "Keyword rankings, competitors and reports.",
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	view := h.dashboard.Load(r.Context())
	h.page(w, r, http.StatusOK, dashboardConfig, components.DashboardPage(view))
}

// GenerateReport handles POST /dashboard/generate-report.
func (h *Handlers) GenerateReport(w http.ResponseWriter, r *http.Request) {
	flash.Redirect(w, r, "/dashboard", h.dashboard.GenerateReport(r.Context()))
}

// Analyze handles POST /dashboard/analyze.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	flash.Redirect(w, r, "/dashboard", h.dashboard.Analyze(r.Context()))
}

func (h *Handlers) ContentIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.dashboard.ContentIdeas(r.Context())
	h.page(w, r, http.StatusOK, components.PageConfig{Title: "Content Ideas - SwedensAi"},
		components.ContentIdeasPage(ideas, err != nil))
}

// ReportPDF streams a report PDF from the backend.
func (h *Handlers) ReportPDF(w http.ResponseWriter, r *http.Request) error {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		return apperror.NewNotFound("Report", idParam)
	}

	pdf, err := h.dashboard.ReportPDF(r.Context(), id)
	if err != nil {
		return err
	}
	defer pdf.Body.Close()

	w.Header().Set("Content-Type", pdf.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", pdf.Filename))
	if pdf.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(pdf.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, pdf.Body); err != nil {
		// headers are gone, nothing left to tell the client
		h.log.Warn("report pdf stream interrupted", slog.Int64("report_id", id), logger.Error(err))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Misc
// ---------------------------------------------------------------------------

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// Health reports liveness. The website stays healthy while the backend is
// down; the backend state is informational.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Backend: "ok"}
	if _, err := h.api.Health(ctx); err != nil {
		resp.Backend = "unavailable"
		h.log.Warn("backend health check failed",
			slog.String("backend", h.api.BaseURL()),
			logger.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.errors.Handle(w, r, apperror.ErrNotFound)
}

// MethodNotAllowed answers requests with an unsupported method.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.errors.Handle(w, r, apperror.New(http.StatusMethodNotAllowed, "method_not_allowed", "This page does not accept that kind of request"))
}

// Wrap adapts a failing handler.
func (h *Handlers) Wrap(fn apperror.HandlerFunc) http.HandlerFunc {
	return h.errors.Wrap(fn)
}
