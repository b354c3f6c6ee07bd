package checkout

import (
	"regexp"
	"strings"
)

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type requiredField struct {
	name    string
	message string
	value   func(State) string
}

// requiredFields is the one rule table both the validity predicate and the
// form validator read. Phone and postal code are optional.
var requiredFields = []requiredField{
	{"email", "Email is required", func(s State) string { return s.ContactInfo.Email }},
	{"first_name", "First name is required", func(s State) string { return s.DeliveryInfo.FirstName }},
	{"last_name", "Last name is required", func(s State) string { return s.DeliveryInfo.LastName }},
	{"address", "Address is required", func(s State) string { return s.DeliveryInfo.Address }},
	{"city", "City is required", func(s State) string { return s.DeliveryInfo.City }},
}

// IsCheckoutValid reports whether every required field is non-blank. It does
// not check email format; ValidateForm does.
func IsCheckoutValid(s State) bool {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(s)) == "" {
			return false
		}
	}
	return true
}

// ValidateForm applies the required-field rules plus the email format rule.
// An empty result means the form can be submitted.
func ValidateForm(s State) FieldErrors {
	errs := FieldErrors{}
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(s)) == "" {
			errs[f.name] = f.message
		}
	}
	if _, missing := errs["email"]; !missing && !emailPattern.MatchString(strings.TrimSpace(s.ContactInfo.Email)) {
		errs["email"] = "Please enter a valid email"
	}
	return errs
}
