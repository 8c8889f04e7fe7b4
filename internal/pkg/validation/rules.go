package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Aadhaar number pattern - exactly 12 digits
	AadhaarPattern = `^\d{12}$`

	// Indian mobile number pattern - 10 digits, optionally prefixed with +91
	PhonePattern = `^(\+91)?[6-9]\d{9}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 255
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Aadhaar *regexp.Regexp
	Phone   *regexp.Regexp
}{
	Aadhaar: regexp.MustCompile(AadhaarPattern),
	Phone:   regexp.MustCompile(PhonePattern),
}

// StringValidation validates a string value against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
