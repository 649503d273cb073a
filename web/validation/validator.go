// Package validation implements an accumulating field validator: every
// violated rule is recorded and reported together, nothing short-circuits.
package validation

import (
	"regexp"
	"sort"
	"strings"
)

// EmailRX is the HTML5 email pattern.
var EmailRX = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Errors maps a field key to the messages of every rule it violated.
// It implements error so services can return it directly.
type Errors map[string][]string

func (e Errors) Error() string {
	return strings.Join(e.All(), "; ")
}

// All flattens the messages in stable field order.
func (e Errors) All() []string {
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []string
	for _, key := range keys {
		out = append(out, e[key]...)
	}
	return out
}

// Has reports whether the field has at least one violation.
func (e Errors) Has(key string) bool {
	return len(e[key]) > 0
}

type Validator struct {
	Errors Errors
}

func New() *Validator {
	return &Validator{Errors: Errors{}}
}

// Valid returns true when no rule was violated.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records a violation for the field.
func (v *Validator) AddError(key, message string) {
	v.Errors[key] = append(v.Errors[key], message)
}

// Check records the message when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Matches returns true if the value matches the regexp.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// In returns true if the value equals one of the list entries.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// Unique returns true if all values are distinct.
func Unique[T comparable](values []T) bool {
	seen := make(map[T]bool, len(values))
	for _, value := range values {
		if seen[value] {
			return false
		}
		seen[value] = true
	}
	return true
}

// NotBlank returns true if the value contains non-whitespace characters.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}
