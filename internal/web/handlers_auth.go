package web

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/session"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if sess.IsAuthenticated() {
		http.Redirect(w, r, "/app", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "login", "Log in", "", session.State{}, nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/login", err)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		setFlash(w, "error", "Email and password are required")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	authResp, err := s.apiClient.Login(r.Context(), backend.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		log.Debugf("login failed for %s: %s", email, err)
		s.redirectWithError(w, r, "/login", err)
		return
	}

	if err := s.sessionManager.Save(r.Context(), w, authResp.Token, authResp.UserID); err != nil {
		s.redirectWithError(w, r, "/login", err)
		return
	}

	log.Debugf("user %s logged in", authResp.UserID)
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "register", "Create account", "", session.State{}, nil)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/register", err)
		return
	}

	req := backend.RegisterRequest{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Email:       strings.TrimSpace(r.PostFormValue("email")),
		Password:    r.PostFormValue("password"),
		InviteToken: strings.TrimSpace(r.PostFormValue("invite_token")),
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		setFlash(w, "error", "Name, email and password are required")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	authResp, err := s.apiClient.Register(r.Context(), req)
	if err != nil {
		s.redirectWithError(w, r, "/register", err)
		return
	}

	if err := s.sessionManager.Save(r.Context(), w, authResp.Token, authResp.UserID); err != nil {
		s.redirectWithError(w, r, "/register", err)
		return
	}

	log.Debugf("user %s registered", authResp.UserID)
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessionManager.Clear(r.Context(), w, r)
	setFlash(w, "success", "Logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
