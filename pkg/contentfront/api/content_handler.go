package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tendant/content-frontend/pkg/contentfront"
)

// experimentHeader carries the full experiment assignment as comma-joined
// "name=variant" pairs, e.g. "X-AB-Test: TrafficSignsSummary=B". A single
// header keeps experiment names case-exact through header canonicalization.
const experimentHeader = "X-AB-Test"

// experimentCookiePrefix marks experiment assignment cookies, e.g.
// "ABTest-TrafficSignsSummary=B".
const experimentCookiePrefix = "ABTest-"

// ContentHandler serves the public content dispatch surface.
type ContentHandler struct {
	service contentfront.Service
	locales map[string]bool
	logger  *slog.Logger
}

// HandlerOption configures a ContentHandler.
type HandlerOption func(*ContentHandler)

// WithLocales replaces the locale suffix set recognised in request paths.
func WithLocales(locales []string) HandlerOption {
	return func(h *ContentHandler) {
		h.locales = localeSet(locales)
	}
}

// WithHandlerLogger sets the structured logger.
func WithHandlerLogger(logger *slog.Logger) HandlerOption {
	return func(h *ContentHandler) {
		h.logger = logger
	}
}

// NewContentHandler creates the content dispatch handler.
func NewContentHandler(service contentfront.Service, opts ...HandlerOption) *ContentHandler {
	h := &ContentHandler{
		service: service,
		locales: localeSet(defaultLocales),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the routes for content dispatch.
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.Health)
	r.Get("/*", h.Show)
	r.Post("/*", h.SubmitChoice)

	return r
}

// Show resolves a content path into its negotiated representation.
func (h *ContentHandler) Show(w http.ResponseWriter, r *http.Request) {
	desc := h.describeRequest(r)
	assignment := assignmentFromRequest(r)

	resp, err := h.service.Resolve(r.Context(), desc, assignment)
	if err != nil {
		h.logger.Error("resolve failed", "path", desc.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeResponse(w, r, resp)
}

// SubmitChoice routes a follow-on choice submission through a matching
// handler-form experiment override.
func (h *ContentHandler) SubmitChoice(w http.ResponseWriter, r *http.Request) {
	parsed := parsePath(chi.URLParam(r, "*"), h.locales)
	basePath := "/" + parsed.Path
	assignment := assignmentFromRequest(r)

	override, ok := h.service.Experiments().HandlerOverride(basePath, assignment)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": "no handler for this path"})
		return
	}

	choice := r.FormValue("option")
	if target, ok := override.Choices[choice]; ok {
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	errorTarget := override.ErrorRedirect
	if errorTarget == "" {
		errorTarget = basePath + "?error=true"
	}
	http.Redirect(w, r, errorTarget, http.StatusFound)
}

// Health is the liveness endpoint.
func (h *ContentHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "healthy"})
}

func (h *ContentHandler) describeRequest(r *http.Request) contentfront.RequestDescriptor {
	parsed := parsePath(chi.URLParam(r, "*"), h.locales)
	return contentfront.RequestDescriptor{
		Path:      parsed.Path,
		Format:    parsed.Format,
		Locale:    parsed.Locale,
		Variant:   parsed.Variant,
		Accept:    contentfront.ParseAccept(r.Header.Get("Accept")),
		ViaScript: strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest"),
	}
}

// assignmentFromRequest reads the externally-supplied experiment assignment
// from headers and cookies. Headers win over cookies for the same
// experiment.
func assignmentFromRequest(r *http.Request) contentfront.Assignment {
	assignment := contentfront.Assignment{}
	for _, cookie := range r.Cookies() {
		if strings.HasPrefix(cookie.Name, experimentCookiePrefix) {
			name := strings.TrimPrefix(cookie.Name, experimentCookiePrefix)
			if name != "" && cookie.Value != "" {
				assignment[name] = cookie.Value
			}
		}
	}
	for _, pair := range strings.Split(r.Header.Get(experimentHeader), ",") {
		name, variant, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && name != "" && variant != "" {
			assignment[name] = variant
		}
	}
	if len(assignment) == 0 {
		return nil
	}
	return assignment
}

func writeResponse(w http.ResponseWriter, r *http.Request, resp *contentfront.Response) {
	w.Header().Set("Cache-Control", resp.Cache.Header())

	if resp.RedirectTo != "" {
		http.Redirect(w, r, resp.RedirectTo, resp.Status)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	if resp.AllowAllOrigins {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		// Write failures mean the client went away; nothing to unwind.
		_, _ = w.Write(resp.Body)
	}
}
