// Package http provides http transport for client preferences
package http

import (
	stdhttp "net/http"

	"layoffs/internal/modkit/httpkit"
	pnet "layoffs/internal/platform/net"
	"layoffs/internal/services/api/preferences/domain"
	svc "layoffs/internal/services/api/preferences/service"
)

// Register mounts preference endpoints; ClientCookie must run first
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/language", h.language)
	httpkit.PutJSON[domain.SetLanguageInput](r, "/language", h.setLanguage)
}

type handlers struct{ svc svc.Service }

// reply sets the client cookie when the id was minted on this request
func reply(r *stdhttp.Request, out any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	resp := httpkit.OK(out)
	if c := issued(r.Context()); c != nil {
		resp = resp.WithCookie(c)
	}
	return resp, nil
}

// swagger:route GET /preferences/language Preferences prefLanguage
// @Summary Preferred display language
// @Description The stored language of this client, or the default
// @Tags Preferences
// @Produce json
// @Success 200 {object} domain.LanguageView "ok"
// @Router /preferences/language [get]
func (h *handlers) language(r *stdhttp.Request) (any, error) {
	out, err := h.svc.Language(r.Context(), pnet.ClientID(r.Context()))
	return reply(r, out, err)
}

// swagger:route PUT /preferences/language Preferences prefSetLanguage
// @Summary Store the display language
// @Tags Preferences
// @Accept json
// @Produce json
// @Param payload body domain.SetLanguageInput true "Language"
// @Success 200 {object} domain.LanguageView "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Router /preferences/language [put]
func (h *handlers) setLanguage(r *stdhttp.Request, in domain.SetLanguageInput) (any, error) {
	out, err := h.svc.SetLanguage(r.Context(), pnet.ClientID(r.Context()), in.Lang)
	return reply(r, out, err)
}
