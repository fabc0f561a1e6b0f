package contact

import (
	"net/http"

	apperrors "github.com/risemars/site/internal/services/web/platform/errors"
	"github.com/risemars/site/internal/services/web/platform/flash"
	"github.com/risemars/site/internal/services/web/platform/httpx"
	"github.com/risemars/site/internal/services/web/platform/observability"
	"github.com/risemars/site/internal/services/web/platform/pagerender"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/platform/requestmeta"
	"github.com/risemars/site/internal/services/web/routepath"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
	"go.uber.org/zap"
)

const (
	maxFormBytes     = 64 << 10
	successNoticeKey = "contact.success"
	failureNoticeKey = "contact.failure"
	rateLimitedKey   = "contact.rate_limited"
)

type handlers struct {
	publichandler.Base
	service service
	metrics *observability.Metrics
}

func newHandlers(s service, base publichandler.Base, metrics *observability.Metrics) handlers {
	return handlers{Base: base, service: s, metrics: metrics}
}

func (h handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	view := webtemplates.ContactView{}
	if notice, ok := flash.ReadAndClear(w, r, h.ProxyPolicy()); ok && notice.Kind == flash.KindSuccess {
		view.Banner = bannerFor(webtemplates.BannerSuccess, notice.Key)
		view.Banner.Ref = notice.Ref
	}
	h.renderContact(w, r, http.StatusOK, view)
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	policy := h.ProxyPolicy()
	if requestmeta.IsCrossOrigin(r, policy) {
		h.metrics.RecordContact(observability.OutcomeForbidden)
		h.WriteError(w, r, apperrors.EK(apperrors.KindForbidden, "error.http.forbidden", "cross-origin contact submission"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.http.bad_request", "failed to parse contact form"))
		return
	}

	result, err := h.service.submit(r.Context(), requestmeta.ClientIP(r, policy), formFromRequest(r))
	if result.Outcome != "" {
		h.metrics.RecordContact(result.Outcome)
	}
	if result.Outcome == observability.OutcomeCanceled {
		h.Logger().Debug("contact submission canceled", zap.String("request_id", httpx.RequestIDFrom(r)))
		return
	}
	if err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "send contact submission", err))
		return
	}

	switch result.Outcome {
	case observability.OutcomeRateLimited:
		h.renderContact(w, r, http.StatusTooManyRequests, webtemplates.ContactView{
			Form:   result.Form,
			Banner: bannerFor(webtemplates.BannerError, rateLimitedKey),
		})
	case observability.OutcomeInvalid:
		h.renderContact(w, r, http.StatusUnprocessableEntity, webtemplates.ContactView{
			Form:   result.Form,
			Errors: result.Errors,
			Banner: bannerFor(webtemplates.BannerError, failureNoticeKey),
		})
	default:
		flash.Write(w, r, flash.Notice{Kind: flash.KindSuccess, Key: successNoticeKey, Ref: result.Receipt}, policy)
		httpx.WriteSeeOther(w, r, routepath.Contact)
	}
}

func (h handlers) renderContact(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ContactView) {
	loc, lang := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "contact.page_title"),
		StatusCode: status,
		View:       routepath.ViewContact,
		Fragment:   webtemplates.ContactFragment(view, loc),
		Loc:        loc,
		Lang:       lang,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

func bannerFor(kind, key string) *webtemplates.ContactBanner {
	return &webtemplates.ContactBanner{Kind: kind, TitleKey: key + ".title", BodyKey: key + ".body"}
}

func formFromRequest(r *http.Request) webtemplates.ContactForm {
	return webtemplates.ContactForm{
		Name:    r.PostFormValue(webtemplates.ContactFieldName),
		Email:   r.PostFormValue(webtemplates.ContactFieldEmail),
		Phone:   r.PostFormValue(webtemplates.ContactFieldPhone),
		Subject: r.PostFormValue(webtemplates.ContactFieldSubject),
		Message: r.PostFormValue(webtemplates.ContactFieldMessage),
	}
}
