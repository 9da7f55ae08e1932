package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/veloro/deliverydesk/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages rendered by the console. Each page template is parsed together with
// the shared layout into its own set.
var pageNames = []string{
	"login.html",
	"callback.html",
	"profile.html",
	"orders_list.html",
	"order_new.html",
	"order_detail.html",
	"order_delete.html",
	"deliveries_list.html",
	"delivery_new.html",
	"delivery_detail.html",
}

type templateSet struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	// money renders a decimal amount in the console's currency format.
	"money": func(d decimal.Decimal) string {
		return "R$ " + d.StringFixed(2)
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

func parseTemplates() (*templateSet, error) {
	set := &templateSet{pages: make(map[string]*template.Template)}
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		set.pages[name] = t
	}
	return set, nil
}

// pageData is the envelope every template receives.
type pageData struct {
	Title         string
	Authenticated bool
	Flash         *app.Notice
	Data          any
}

// render writes one page; the queued flash notice, if any, is consumed here.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	t, ok := s.templates.pages[name]
	if !ok {
		s.log.Error("unknown template", "name", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	env := pageData{
		Title:         title,
		Authenticated: s.app.Session.Authenticated(),
		Flash:         popFlash(w, r),
		Data:          data,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout.html", env); err != nil {
		s.log.Error("render failed", "template", name, "err", err)
	}
}
