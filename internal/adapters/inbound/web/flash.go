package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/veloro/deliverydesk/internal/app"
)

// flashCookie is the one-shot notification cookie: written on redirect,
// consumed by the next render.
const flashCookie = "dd_flash"

// setFlash queues a notice for the next rendered page.
func setFlash(w http.ResponseWriter, n app.Notice) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(string(n.Level) + "|" + n.Message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the queued notice, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *app.Notice {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	return &app.Notice{Level: app.NoticeLevel(level), Message: message}
}
