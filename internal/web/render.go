package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/csrf"
	log "github.com/sirupsen/logrus"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/session"
)

const sidebarCookie = "sidebar_open"

// PageData is the envelope every template receives: the page's own
// view model plus the shared chrome state.
type PageData struct {
	Title       string
	ActiveNav   string
	UserID      string
	LoggedIn    bool
	SidebarOpen bool
	Flash       *Flash
	CSRFField   any
	View        any
}

func (s *Server) renderPage(
	w http.ResponseWriter,
	r *http.Request,
	page, title, activeNav string,
	sess session.State,
	view any,
) {
	sidebarOpen := true
	if c, err := r.Cookie(sidebarCookie); err == nil && c.Value == "0" {
		sidebarOpen = false
	}

	data := PageData{
		Title:       title,
		ActiveNav:   activeNav,
		UserID:      sess.UserID,
		LoggedIn:    sess.IsAuthenticated(),
		SidebarOpen: sidebarOpen,
		Flash:       popFlash(w, r),
		CSRFField:   csrf.TemplateField(r),
		View:        view,
	}

	if err := s.templates.Render(w, page, data); err != nil {
		log.Errorf("render page %s: %s", page, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// authExpired is the reaction to a backend 401: clear the session and
// land the visitor on the login page, unless this already is a login
// request. Returns true when it wrote the redirect.
func (s *Server) authExpired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, backend.ErrAuthExpired) || isLoginPath(r.URL.Path) {
		return false
	}

	log.Debugf("auth expired on %s, forcing logout", r.URL.Path)
	if s.instr != nil {
		s.instr.CounterForcedLogouts.Inc()
	}
	s.sessionManager.Clear(r.Context(), w, r)
	setFlash(w, "error", "Your session expired, please log in again")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// redirectWithError stores the error as a flash and sends the visitor
// back to target; an expired backend session overrides the target.
func (s *Server) redirectWithError(
	w http.ResponseWriter,
	r *http.Request,
	target string,
	err error,
) {
	if s.authExpired(w, r, err) {
		return
	}
	setFlash(w, "error", err.Error())
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func isLoginPath(path string) bool {
	return path == "/login" || path == "/register"
}
