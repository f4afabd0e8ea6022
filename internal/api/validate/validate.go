package validate

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Fields keeps the first message reported for each field.
func (e Errs) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, ef := range e {
		if _, ok := out[ef.Field]; !ok {
			out[ef.Field] = ef.Msg
		}
	}
	return out
}

// Collect drops nil results.
func Collect(checks ...*ErrField) Errs {
	var out Errs
	for _, c := range checks {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// First returns the first non-nil check, so chained checks on one field report once.
func First(checks ...*ErrField) *ErrField {
	for _, c := range checks {
		if c != nil {
			return c
		}
	}
	return nil
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func Present[T any](field string, v *T) *ErrField {
	if v == nil {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinLen(field, value string, min int) *ErrField {
	if utf8.RuneCountInString(value) < min {
		return &ErrField{Field: field, Msg: "must be at least " + strconv.Itoa(min) + " characters"}
	}
	return nil
}

func MaxLen(field, value string, max int) *ErrField {
	if utf8.RuneCountInString(value) > max {
		return &ErrField{Field: field, Msg: "must be at most " + strconv.Itoa(max) + " characters"}
	}
	return nil
}

func OneOf[T ~string](field string, v T, allowed ...T) *ErrField {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = string(a)
	}
	return &ErrField{Field: field, Msg: "must be one of " + strings.Join(parts, ", ")}
}

func Email(field, value string) *ErrField {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(addr.Address[strings.LastIndexByte(addr.Address, '@'):], ".") {
		return &ErrField{Field: field, Msg: "invalid email"}
	}
	return nil
}

// URL accepts an empty string or an absolute http(s) URL.
func URL(field, value string) *ErrField {
	if value == "" {
		return nil
	}
	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ErrField{Field: field, Msg: "invalid url"}
	}
	return nil
}

var phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

// Phone accepts an empty string or digits with optional leading +, spaces, dashes and parentheses.
func Phone(field, value string) *ErrField {
	if value == "" || phoneRe.MatchString(value) {
		return nil
	}
	return &ErrField{Field: field, Msg: "invalid phone number"}
}

const (
	PasswordMinLen   = 8
	PasswordMaxBytes = 72
)

// Password enforces the complexity policy: at least 8 characters with a lower-case letter,
// an upper-case letter and a digit. bcrypt ignores anything past 72 bytes so longer input is refused.
func Password(field, value string) *ErrField {
	if utf8.RuneCountInString(value) < PasswordMinLen {
		return &ErrField{Field: field, Msg: "Password must be at least 8 characters"}
	}
	if len(value) > PasswordMaxBytes {
		return &ErrField{Field: field, Msg: "Password must be at most 72 bytes"}
	}
	var lower, upper, digit bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return &ErrField{Field: field, Msg: "Must contain uppercase, lowercase, and number"}
	}
	return nil
}
