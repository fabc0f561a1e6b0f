package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/web/routepath"
)

// Contact form field names, shared by the form markup and its validation.
const (
	ContactFieldName    = "name"
	ContactFieldEmail   = "email"
	ContactFieldPhone   = "phone"
	ContactFieldSubject = "subject"
	ContactFieldMessage = "message"
)

// bannerDismissMillis is how long a banner stays on screen.
const bannerDismissMillis = "5000"

// Banner kinds.
const (
	BannerSuccess = "success"
	BannerError   = "error"
)

// ContactForm holds submitted contact values.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactBanner is the message shown above the form.
type ContactBanner struct {
	Kind     string
	TitleKey string
	BodyKey  string
	// Ref is an optional reference shown with the banner, such as a receipt id.
	Ref string
}

// ContactView carries the contact page state. Errors maps field names to
// catalog keys.
type ContactView struct {
	Form   ContactForm
	Errors map[string]string
	Banner *ContactBanner
}

type contactField struct {
	name         string
	inputType    string
	value        string
	labelKey     string
	placeholder  string
	required     bool
	minLength    string
	autocomplete string
}

var contactFAQKeys = []string{"start", "support", "industries", "success"}

// ContactFragment renders the contact page: details, form and FAQ.
func ContactFragment(view ContactView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		writeHero(m, heroCopy{
			Lead:     T(loc, "contact.hero.title_lead"),
			Accent:   T(loc, "contact.hero.title_accent"),
			Subtitle: T(loc, "contact.hero.subtitle"),
		}, "hero-page")
		closeHero(m)

		m.open("section", "class", "section section-muted")
		m.open("div", "class", "container split")

		m.open("div", "class", "contact-info")
		m.elem("h2", T(loc, "contact.info.heading"))
		m.elem("p", T(loc, "contact.info.body"))
		writeContactDetails(m, loc, "contact-details")
		m.elem("h3", T(loc, "contact.social.heading"))
		writeSocialLinks(m)
		m.close("div")

		m.open("div", "class", "contact-form-card")
		m.elem("h2", T(loc, "contact.form.heading"))
		m.render(ContactFormPanel(view, loc))
		m.close("div")

		m.close("div")
		m.close("section")

		m.open("section", "class", "section")
		m.open("div", "class", "container")
		m.elem("h2", T(loc, "contact.map.heading"))
		m.open("div", "class", "map-placeholder")
		writeIcon(m, "map-pin", "icon icon-lg")
		m.elem("p", T(loc, "contact.map.placeholder"))
		m.close("div")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section section-muted")
		m.open("div", "class", "container narrow")
		m.elem("h2", T(loc, "contact.faq.heading"))
		m.open("div", "class", "faq")
		for _, key := range contactFAQKeys {
			m.open("details", "class", "faq-item")
			m.elem("summary", T(loc, "contact.faq."+key+".question"))
			m.elem("p", T(loc, "contact.faq."+key+".answer"))
			m.close("details")
		}
		m.close("div")
		m.close("div")
		m.close("section")
		return m.err
	})
}

// ContactFormPanel renders the banner and the form. Field errors are linked
// to their inputs through aria-describedby.
func ContactFormPanel(view ContactView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		if view.Banner != nil {
			writeBanner(m, loc, *view.Banner)
		}
		m.open("form",
			"id", "contact-form",
			"class", "contact-form",
			"method", "post",
			"action", routepath.Contact,
			"hx-disabled-elt", "find button[type='submit']",
			"data-contact-form", "",
		)
		fields := []contactField{
			{name: ContactFieldName, inputType: "text", value: view.Form.Name, labelKey: "contact.form.name_label", placeholder: "contact.form.name_placeholder", required: true, minLength: "2", autocomplete: "name"},
			{name: ContactFieldEmail, inputType: "email", value: view.Form.Email, labelKey: "contact.form.email_label", placeholder: "contact.form.email_placeholder", required: true, autocomplete: "email"},
			{name: ContactFieldPhone, inputType: "tel", value: view.Form.Phone, labelKey: "contact.form.phone_label", placeholder: "contact.form.phone_placeholder", autocomplete: "tel"},
			{name: ContactFieldSubject, inputType: "text", value: view.Form.Subject, labelKey: "contact.form.subject_label", placeholder: "contact.form.subject_placeholder", required: true},
		}
		m.open("div", "class", "form-grid")
		for _, field := range fields {
			writeContactInput(m, loc, field, view.Errors[field.name])
		}
		m.close("div")
		writeContactTextarea(m, loc, contactField{
			name:        ContactFieldMessage,
			value:       view.Form.Message,
			labelKey:    "contact.form.message_label",
			placeholder: "contact.form.message_placeholder",
			required:    true,
			minLength:   "10",
		}, view.Errors[ContactFieldMessage])
		m.open("button", "type", "submit", "class", "button button-primary button-block", "data-pending-label", T(loc, "contact.form.submitting"))
		m.elem("span", T(loc, "contact.form.submit"), "data-button-label", "")
		writeIcon(m, "send", "icon icon-sm")
		m.close("button")
		m.close("form")
		return m.err
	})
}

func writeBanner(m *markup, loc Localizer, banner ContactBanner) {
	role, icon := "status", "circle-check"
	if banner.Kind != BannerSuccess {
		role, icon = "alert", "circle-alert"
	}
	m.open("div", "class", "banner banner-"+banner.Kind, "role", role, "data-auto-dismiss", bannerDismissMillis)
	writeIcon(m, icon, "icon")
	m.open("div", "class", "banner-body")
	m.elem("p", T(loc, banner.TitleKey), "class", "banner-title")
	m.elem("p", T(loc, banner.BodyKey))
	if banner.Ref != "" {
		m.elem("p", banner.Ref, "class", "banner-ref")
	}
	m.close("div")
	m.open("button", "type", "button", "class", "banner-dismiss", "aria-label", T(loc, "core.action.dismiss"), "data-dismiss", "")
	writeIcon(m, "x", "icon icon-sm")
	m.close("button")
	m.close("div")
}

func writeContactInput(m *markup, loc Localizer, field contactField, errKey string) {
	m.open("div", "class", fieldClass(errKey))
	writeFieldLabel(m, loc, field)
	attrs := []string{
		"id", "contact-" + field.name,
		"name", field.name,
		"type", field.inputType,
		"value", field.value,
		"placeholder", T(loc, field.placeholder),
	}
	attrs = append(attrs, fieldConstraintAttrs(field, errKey)...)
	m.open("input", attrs...)
	writeFieldError(m, loc, field.name, errKey)
	m.close("div")
}

func writeContactTextarea(m *markup, loc Localizer, field contactField, errKey string) {
	m.open("div", "class", fieldClass(errKey))
	writeFieldLabel(m, loc, field)
	attrs := []string{
		"id", "contact-" + field.name,
		"name", field.name,
		"rows", "5",
		"placeholder", T(loc, field.placeholder),
	}
	attrs = append(attrs, fieldConstraintAttrs(field, errKey)...)
	m.open("textarea", attrs...)
	m.text(field.value)
	m.close("textarea")
	writeFieldError(m, loc, field.name, errKey)
	m.close("div")
}

func writeFieldLabel(m *markup, loc Localizer, field contactField) {
	m.open("label", "for", "contact-"+field.name)
	m.text(T(loc, field.labelKey))
	if field.required {
		m.elem("span", "*", "class", "required", "aria-hidden", "true")
	}
	m.close("label")
}

func fieldConstraintAttrs(field contactField, errKey string) []string {
	var attrs []string
	if field.required {
		attrs = append(attrs, "required", "required")
	}
	if field.minLength != "" {
		attrs = append(attrs, "minlength", field.minLength)
	}
	if field.autocomplete != "" {
		attrs = append(attrs, "autocomplete", field.autocomplete)
	}
	if errKey != "" {
		attrs = append(attrs, "aria-invalid", "true", "aria-describedby", "contact-"+field.name+"-error")
	}
	return attrs
}

func writeFieldError(m *markup, loc Localizer, name, errKey string) {
	if errKey == "" {
		return
	}
	m.elem("p", T(loc, errKey), "id", "contact-"+name+"-error", "class", "field-error")
}

func fieldClass(errKey string) string {
	if errKey != "" {
		return "field has-error"
	}
	return "field"
}
