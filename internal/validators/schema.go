package validators

import (
	"fmt"
	"unicode/utf8"

	"github.com/BruksfildServices01/barber-desk/internal/httperr"
)

// ===============================
// Declarative form schemas
// ===============================
//
// A Schema is an ordered list of per-field rules evaluated against the raw
// form payload before anything reaches a repository. Rules produce
// field-level messages for the UI and never touch the store.

type Rule func(value any) (ok bool, message string)

type FieldRule struct {
	Field string
	Rules []Rule
}

type Schema []FieldRule

// Validate runs every rule and collects the first failing message per field.
// A nil map means the payload passed.
func (s Schema) Validate(payload map[string]any) map[string]string {
	var errs map[string]string
	for _, fr := range s {
		for _, rule := range fr.Rules {
			if ok, msg := rule(payload[fr.Field]); !ok {
				if errs == nil {
					errs = map[string]string{}
				}
				errs[fr.Field] = msg
				break
			}
		}
	}
	return errs
}

// Check wraps Validate into the error taxonomy.
func (s Schema) Check(payload map[string]any) error {
	if errs := s.Validate(payload); errs != nil {
		return httperr.ErrValidationFields("invalid form data", errs)
	}
	return nil
}

// --------- Rules ---------

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// MinLen requires a string of at least n characters.
func MinLen(n int, message string) Rule {
	return func(v any) (bool, string) {
		s, ok := asString(v)
		if !ok || utf8.RuneCountInString(s) < n {
			return false, message
		}
		return true, ""
	}
}

// NonEmpty requires a present, non-empty string.
func NonEmpty(message string) Rule {
	return MinLen(1, message)
}

// OptionalEmail passes absent and "" values, otherwise requires valid
// address syntax.
func OptionalEmail(message string) Rule {
	return func(v any) (bool, string) {
		if v == nil {
			return true, ""
		}
		s, ok := asString(v)
		if !ok {
			return false, message
		}
		if s == "" {
			return true, ""
		}
		if !IsEmailValid(s) {
			return false, message
		}
		return true, ""
	}
}

// OneOf constrains a string to an enumeration.
func OneOf(message string, values ...string) Rule {
	return func(v any) (bool, string) {
		s, ok := asString(v)
		if !ok {
			return false, message
		}
		for _, allowed := range values {
			if s == allowed {
				return true, ""
			}
		}
		return false, message
	}
}

// NonEmptyStringList requires a list with at least one entry; tolerates both
// []string and []any payloads.
func NonEmptyStringList(message string) Rule {
	return func(v any) (bool, string) {
		switch list := v.(type) {
		case []string:
			if len(list) > 0 {
				return true, ""
			}
		case []any:
			if len(list) > 0 {
				return true, ""
			}
		}
		return false, message
	}
}

// OptionalBool passes absent values and booleans, rejects everything else.
func OptionalBool(message string) Rule {
	return func(v any) (bool, string) {
		if v == nil {
			return true, ""
		}
		if _, ok := v.(bool); ok {
			return true, ""
		}
		return false, message
	}
}

// Optional wraps a rule so absent values pass.
func Optional(rule Rule) Rule {
	return func(v any) (bool, string) {
		if v == nil {
			return true, ""
		}
		return rule(v)
	}
}

// --------- Entity schemas ---------

func statusValues() []string {
	return []string{"pending", "confirmed", "completed", "cancelled"}
}

// AppointmentSchema gates appointment form submissions.
var AppointmentSchema = Schema{
	{Field: "clientName", Rules: []Rule{MinLen(2, "name must be at least 2 characters")}},
	{Field: "clientEmail", Rules: []Rule{OptionalEmail("invalid email")}},
	{Field: "barberId", Rules: []Rule{NonEmpty("a barber must be selected")}},
	{Field: "service", Rules: []Rule{NonEmpty("a service must be selected")}},
	{Field: "date", Rules: []Rule{NonEmpty("date is required")}},
	{Field: "time", Rules: []Rule{NonEmpty("time is required")}},
	{Field: "status", Rules: []Rule{Optional(OneOf(
		fmt.Sprintf("status must be one of %v", statusValues()),
		statusValues()...,
	))}},
}

// BarberSchema gates barber form submissions.
var BarberSchema = Schema{
	{Field: "name", Rules: []Rule{MinLen(2, "name must be at least 2 characters")}},
	{Field: "email", Rules: []Rule{OptionalEmail("invalid email")}},
	{Field: "services", Rules: []Rule{NonEmptyStringList("at least one service is required")}},
	{Field: "active", Rules: []Rule{OptionalBool("active must be a boolean")}},
}
