package web

import (
	"net/http"

	"github.com/fitdash/fitdash/internal/backend"
)

type settingsView struct {
	APIBaseURL string
	Health     *backend.Health
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	view := settingsView{APIBaseURL: s.apiClient.BaseURL()}
	s.renderPage(w, r, "settings", "Settings", "settings", sess, view)
}

// handleSettingsHealth probes the backend health endpoint, no auth
// required on that one.
func (s *Server) handleSettingsHealth(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	health, err := s.apiClient.Health(r.Context())
	if err != nil {
		s.redirectWithError(w, r, "/app/settings", err)
		return
	}

	view := settingsView{APIBaseURL: s.apiClient.BaseURL(), Health: health}
	s.renderPage(w, r, "settings", "Settings", "settings", sess, view)
}

// handleSettingsValidate makes an authenticated call purely to check
// whether the stored token still works; a 401 routes through the
// regular forced-logout path.
func (s *Server) handleSettingsValidate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	if _, err := s.apiClient.UserWorkouts(r.Context(), sess.Token, sess.UserID); err != nil {
		s.redirectWithError(w, r, "/app/settings", err)
		return
	}

	setFlash(w, "success", "Session token is valid")
	http.Redirect(w, r, "/app/settings", http.StatusSeeOther)
}

func (s *Server) handleSidebarToggle(w http.ResponseWriter, r *http.Request) {
	// the sidebar is open by default, so a missing cookie toggles to closed
	value := "0"
	if c, err := r.Cookie(sidebarCookie); err == nil && c.Value == "0" {
		value = "1"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sidebarCookie,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	back := r.Header.Get("Referer")
	if back == "" {
		back = "/app"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
