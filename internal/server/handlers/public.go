package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/AlexTLDR/partyplanner/internal/config"
	"github.com/AlexTLDR/partyplanner/internal/i18n"
	"github.com/AlexTLDR/partyplanner/internal/view"
	"github.com/AlexTLDR/partyplanner/internal/viewer"
)

// Server interface defines the methods needed by handlers
type Server interface {
	GetConfig() *config.Config
	GetViewer(w http.ResponseWriter, r *http.Request) (*viewer.Viewer, bool)
}

// HXRequestHeader is set by htmx on requests it issues.
const HXRequestHeader = "HX-Request"

// isHTMXRequest reports whether the request only wants the #app fragment.
func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get(HXRequestHeader) == "true"
}

// applyLanguage resolves the request language and re-renders the viewer's
// screen in it. An explicit ?lang= choice is remembered in a cookie.
func applyLanguage(s Server, v *viewer.Viewer, w http.ResponseWriter, r *http.Request) {
	cfg := s.GetConfig()
	lang := i18n.GetLanguageFromRequest(r, cfg.Language())

	if _, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     "lang",
			Value:    string(lang),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	v.Screen.SetOptions(view.Options{Lang: lang, PhoneRegion: cfg.PhoneRegion})
}

// renderScreen writes the viewer's mounted tree: only the #app subtree for
// htmx requests, the full page otherwise.
func renderScreen(v *viewer.Viewer, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMXRequest(r) {
		if err := v.Screen.WriteFragment(w); err != nil {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
		return
	}
	templ.Handler(v.Screen.Page()).ServeHTTP(w, r)
}

// HandleHome is the page load: the viewer starts over with no selection and
// reloads every party.
func HandleHome(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, _ := s.GetViewer(w, r)
		applyLanguage(s, v, w, r)

		v.Controller.Reset()
		v.Controller.LoadAllParties(r.Context())

		renderScreen(v, w, r)
	}
}

// HandleSelectParty is the click on a party. A session opened directly on
// this URL loads the party list first.
func HandleSelectParty(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		v, fresh := s.GetViewer(w, r)
		applyLanguage(s, v, w, r)

		if fresh {
			v.Controller.LoadAllParties(r.Context())
		}
		v.Controller.LoadParty(r.Context(), id)

		renderScreen(v, w, r)
	}
}
