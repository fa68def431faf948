// Package validate normalizes and checks public form input. Field rules are
// part of the wire contract with the deployed front end: rules run in
// declaration order (name, email, phone, message) and every violation is
// reported, not just the first.
package validate

import (
	"regexp"
	"strings"
)

// Loose on purpose: anything shaped like <non-space>@<non-space>.<non-space>.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var phoneKeep = map[rune]bool{
	'-': true, '+': true, '(': true, ')': true, ' ': true,
}

// Result carries either the sanitized fields or the ordered error list.
type Result struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Errors  []string
}

// OK reports whether every rule passed.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Fields holds raw form input. Phone and Message checks run only when the
// corresponding Require/Allow flags are set, since not every endpoint takes
// every field.
type Fields struct {
	Name         string
	Email        string
	Phone        string
	Message      string
	RequirePhone bool
}

// Check sanitizes fields and collects violations in rule order.
func Check(in Fields) *Result {
	res := &Result{}

	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		res.Errors = append(res.Errors, "Name is required and must be at least 2 characters long")
	}
	res.Name = Truncate(name, 100)

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailPattern.MatchString(email) {
		res.Errors = append(res.Errors, "A valid email address is required")
	}
	res.Email = Truncate(email, 200)

	if in.RequirePhone {
		phone := CleanPhone(in.Phone)
		if len(phone) < 10 {
			res.Errors = append(res.Errors, "A valid phone number is required (at least 10 digits)")
		}
		res.Phone = Truncate(phone, 20)
	} else if in.Phone != "" {
		res.Phone = Truncate(CleanPhone(in.Phone), 20)
	}

	res.Message = Truncate(strings.TrimSpace(in.Message), 2000)

	return res
}

// Email normalizes an address (trim, lower-case, cap at 200) and reports
// whether it matches the loose pattern.
func Email(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	return Truncate(email, 200), emailPattern.MatchString(email)
}

// CleanPhone keeps digits and the separator characters the original form
// allowed: -, +, (, ) and space.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || phoneKeep[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate caps s at max bytes. Form input is effectively ASCII, matching
// the original's character-count truncation.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
