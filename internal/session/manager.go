package session

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/fitdash/fitdash/internal/backend"
)

const (
	CookieToken  = "auth_token"
	CookieUserID = "auth_user_id"
)

// State is what the rest of the service sees of a logged-in visitor.
type State struct {
	Token  string
	UserID string
}

// IsAuthenticated requires both halves of the session. A token with no
// resolvable user id is a partial session and counts as logged out.
func (s State) IsAuthenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// Manager is the single write path for session persistence. Save,
// Resolve and Clear each touch both the cookies and the server-side
// store so the two cannot drift apart through this API.
type Manager struct {
	store  Store
	secure bool
}

func NewManager(store Store, secure bool) *Manager {
	return &Manager{
		store:  store,
		secure: secure,
	}
}

// Save persists a fresh login. Session cookies carry no Max-Age, the
// browser drops them when it closes, while the store side expires via
// its own TTL.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, token, userID string) error {
	token = backend.NormalizeToken(token)
	if err := m.store.Set(ctx, token, userID); err != nil {
		return err
	}
	m.setCookie(w, CookieToken, token)
	m.setCookie(w, CookieUserID, userID)
	return nil
}

// Resolve reads the session off an incoming request. The store is
// authoritative for the user id; the cookie copy is only consulted
// when the store has no entry for the token (e.g. an in-memory store
// after a restart).
func (m *Manager) Resolve(ctx context.Context, r *http.Request) State {
	tokenCookie, err := r.Cookie(CookieToken)
	if err != nil || tokenCookie.Value == "" {
		return State{}
	}

	state := State{Token: cookieToken(tokenCookie)}
	if state.Token == "" {
		return State{}
	}

	userID, err := m.store.Get(ctx, state.Token)
	switch {
	case err == nil:
		state.UserID = userID
		return state
	case errors.Is(err, ErrSessionNotFound):
		// fall through to the cookie copy
	default:
		log.Errorf("session resolve, store get: %s", err)
	}

	if userIDCookie, err := r.Cookie(CookieUserID); err == nil {
		state.UserID = userIDCookie.Value
	}
	return state
}

// Clear removes the session everywhere. Store errors are logged, not
// returned, the cookies get expired regardless so the visitor always
// ends up logged out.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if tokenCookie, err := r.Cookie(CookieToken); err == nil && cookieToken(tokenCookie) != "" {
		if err := m.store.Del(ctx, cookieToken(tokenCookie)); err != nil {
			log.Errorf("session clear, store del: %s", err)
		}
	}
	m.expireCookie(w, CookieToken)
	m.expireCookie(w, CookieUserID)
}

// cookieToken turns a raw cookie value into the store key: browsers
// and proxies may URL-encode the value, and older clients stored it
// with a "Bearer " prefix or surrounding quotes.
func cookieToken(c *http.Cookie) string {
	value := c.Value
	if decoded, err := url.QueryUnescape(value); err == nil {
		value = decoded
	}
	return backend.NormalizeToken(value)
}

func (m *Manager) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}

func (m *Manager) expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}
