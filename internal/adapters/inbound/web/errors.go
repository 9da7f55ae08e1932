package web

import (
	"errors"

	"github.com/veloro/deliverydesk/internal/app"
	"github.com/veloro/deliverydesk/internal/ports"
)

// noticeFor translates a flow error into an operator-facing notice. Every
// error stays non-fatal: the page it lands on remains navigable.
func noticeFor(err error) app.Notice {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return app.Notice{Level: app.NoticeError, Message: "Registro não encontrado"}
	case errors.Is(err, ports.ErrUnauthorized):
		return app.Notice{Level: app.NoticeError, Message: "Sessão expirada. Faça login novamente."}
	default:
		return app.Notice{Level: app.NoticeError, Message: "Erro ao comunicar com o servidor"}
	}
}
