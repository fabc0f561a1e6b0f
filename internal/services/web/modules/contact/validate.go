package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

const (
	minNameLength    = 2
	minMessageLength = 10
)

var (
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// Validation keys, one per failing rule.
const (
	keyNameRequired    = "contact.validation.name_required"
	keyNameTooShort    = "contact.validation.name_too_short"
	keyEmailRequired   = "contact.validation.email_required"
	keyEmailInvalid    = "contact.validation.email_invalid"
	keyPhoneInvalid    = "contact.validation.phone_invalid"
	keySubjectRequired = "contact.validation.subject_required"
	keyMessageRequired = "contact.validation.message_required"
	keyMessageTooShort = "contact.validation.message_too_short"
)

// normalizeForm trims surrounding whitespace from every field.
func normalizeForm(form webtemplates.ContactForm) webtemplates.ContactForm {
	return webtemplates.ContactForm{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Subject: strings.TrimSpace(form.Subject),
		Message: strings.TrimSpace(form.Message),
	}
}

// Validate checks a normalized form and returns the first failing rule per
// field as a localization key. An empty map means the form is valid.
func Validate(form webtemplates.ContactForm) map[string]string {
	errs := map[string]string{}
	switch {
	case form.Name == "":
		errs[webtemplates.ContactFieldName] = keyNameRequired
	case utf8.RuneCountInString(form.Name) < minNameLength:
		errs[webtemplates.ContactFieldName] = keyNameTooShort
	}
	switch {
	case form.Email == "":
		errs[webtemplates.ContactFieldEmail] = keyEmailRequired
	case !emailPattern.MatchString(form.Email):
		errs[webtemplates.ContactFieldEmail] = keyEmailInvalid
	}
	if form.Phone != "" && !phonePattern.MatchString(form.Phone) {
		errs[webtemplates.ContactFieldPhone] = keyPhoneInvalid
	}
	if form.Subject == "" {
		errs[webtemplates.ContactFieldSubject] = keySubjectRequired
	}
	switch {
	case form.Message == "":
		errs[webtemplates.ContactFieldMessage] = keyMessageRequired
	case utf8.RuneCountInString(form.Message) < minMessageLength:
		errs[webtemplates.ContactFieldMessage] = keyMessageTooShort
	}
	return errs
}
