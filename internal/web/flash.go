package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookie = "flash"

// Flash is a one-shot message surfaced on the next rendered page,
// the server-side stand-in for a toast.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

func setFlash(w http.ResponseWriter, level, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(level + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie in one go.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
