package contact

import (
	"context"
	"errors"

	"github.com/risemars/site/internal/services/web/platform/observability"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

// submitResult is the outcome of one submission attempt. Form holds the
// normalized values for re-rendering.
type submitResult struct {
	Outcome string
	Form    webtemplates.ContactForm
	Errors  map[string]string
	Receipt string
}

type service struct {
	sender  Sender
	limiter *limiter
}

func newService(sender Sender, l *limiter) service {
	if sender == nil {
		sender = SimulatedSender{}
	}
	return service{sender: sender, limiter: l}
}

// submit validates the form, rate-limits valid forms by clientKey and then
// hands them to the sender. Invalid forms never consume limiter tokens. A
// canceled context yields OutcomeCanceled with the context error.
func (s service) submit(ctx context.Context, clientKey string, raw webtemplates.ContactForm) (submitResult, error) {
	form := normalizeForm(raw)
	result := submitResult{Form: form}
	if errs := Validate(form); len(errs) > 0 {
		result.Outcome = observability.OutcomeInvalid
		result.Errors = errs
		return result, nil
	}
	if !s.limiter.allow(clientKey) {
		result.Outcome = observability.OutcomeRateLimited
		return result, nil
	}
	receipt, err := s.sender.Send(ctx, Submission{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			result.Outcome = observability.OutcomeCanceled
		}
		return result, err
	}
	result.Outcome = observability.OutcomeAccepted
	result.Receipt = receipt
	return result, nil
}
