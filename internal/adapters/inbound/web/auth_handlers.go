package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/veloro/deliverydesk/internal/app"
)

// loginView feeds the login page.
type loginView struct {
	OAuthURL string
	DevLogin bool
	Email    string
	Error    string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if s.app.Session.Authenticated() {
		http.Redirect(w, r, pathOrders, http.StatusFound)
		return
	}
	s.render(w, r, "login.html", "Login", loginView{
		OAuthURL: s.app.Config.API.OAuthEntryURL(),
		DevLogin: s.app.Config.Auth.DevLogin,
	})
}

// handleDevLogin handles the development credentials form. Disabled unless
// auth.dev_login is set.
func (s *Server) handleDevLogin(w http.ResponseWriter, r *http.Request) {
	if !s.app.Config.Auth.DevLogin {
		http.NotFound(w, r)
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	err := s.app.Auth.DevLogin(r.Context(), email, password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		s.render(w, r, "login.html", "Login", loginView{
			OAuthURL: s.app.Config.API.OAuthEntryURL(),
			DevLogin: true,
			Email:    email,
			Error:    "Credenciais inválidas",
		})
		return
	}
	if err != nil {
		setFlash(w, noticeFor(err))
		http.Redirect(w, r, pathLogin, http.StatusFound)
		return
	}
	setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Login realizado com sucesso!"})
	http.Redirect(w, r, pathOrders, http.StatusFound)
}

// callbackView feeds the callback page on a failure path: the error is shown
// in place and the page schedules the redirect itself after the delay.
type callbackView struct {
	Message      string
	RedirectTo   string
	DelaySeconds int
}

// handleCallback runs the authentication bootstrap state machine on the
// OAuth callback destination.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result := s.app.Auth.HandleCallback(r.Context(), app.CallbackParams{
		Error:        q.Get("error"),
		Token:        q.Get("token"),
		Name:         q.Get("name"),
		CookieHeader: r.Header.Get("Cookie"),
	})

	switch result.State {
	case app.CallbackLoggedIn:
		setFlash(w, result.Notice)
		http.Redirect(w, r, destPath(result.Redirect), http.StatusFound)
	case app.CallbackAbandoned:
		// The probe raced with teardown; nothing to render for a stale caller.
	default:
		s.render(w, r, "callback.html", "Autenticação", callbackView{
			Message:      result.Notice.Message,
			RedirectTo:   destPath(result.Redirect),
			DelaySeconds: int(result.Delay / time.Second),
		})
	}
}

// handleProfile renders the authenticated operator's remote profile.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.app.Auth.Profile(r.Context())
	if err != nil {
		setFlash(w, noticeFor(err))
		http.Redirect(w, r, pathOrders, http.StatusFound)
		return
	}
	s.render(w, r, "profile.html", "Perfil", user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Auth.Logout(r.Context()); err != nil {
		s.log.Warn("logout left persisted state behind", "err", err)
	}
	setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Logout realizado"})
	http.Redirect(w, r, pathLogin, http.StatusFound)
}
