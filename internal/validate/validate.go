// Package validate evaluates declarative per-entity rule tables against a
// canonical (already normalized) payload.  Each route used to re-derive its
// own ad hoc checks; here an entity is a list of rules and one generic Check
// walks them.  Messages are user-facing and in Spanish, keyed by field name.
package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects how a rule interprets the field value.
type Kind int

const (
	Text   Kind = iota // string field, length bounds apply
	Number             // numeric field, Min/Max apply when HasRange
	List               // []string field, MinLen/MaxLen bound the element count
)

// Rule is one check over one field.
type Rule struct {
	Field    string   // canonical snake_case field name
	Required bool     // empty or absent value fails
	Kind     Kind     // interpretation of the value
	MinLen   int      // minimum string length / list size (0 = none)
	MaxLen   int      // maximum string length / list size (0 = none)
	Min      float64  // numeric lower bound
	Max      float64  // numeric upper bound
	HasRange bool     // apply Min/Max
	OneOf    []string // allowed values (after lowercasing), empty = any
}

// Check evaluates rules against the payload and returns field-keyed error
// messages.  An empty map means the payload is valid.  Optional fields that
// are absent are skipped entirely.
func Check(rules []Rule, m map[string]any) map[string]string {
	errs := map[string]string{}
	for _, r := range rules {
		v, present := m[r.Field]
		switch r.Kind {
		case List:
			items, _ := v.([]string)
			if r.Required && len(items) == 0 {
				errs[r.Field] = "es obligatorio"
				continue
			}
			if len(items) == 0 {
				continue
			}
			if r.MinLen > 0 && len(items) < r.MinLen {
				errs[r.Field] = fmt.Sprintf("debe incluir al menos %d elementos", r.MinLen)
			} else if r.MaxLen > 0 && len(items) > r.MaxLen {
				errs[r.Field] = fmt.Sprintf("no puede incluir más de %d elementos", r.MaxLen)
			}
		case Number:
			if !present || v == nil || v == "" {
				if r.Required {
					errs[r.Field] = "es obligatorio"
				}
				continue
			}
			f, ok := asFloat(v)
			if !ok {
				errs[r.Field] = "debe ser un número"
				continue
			}
			if r.HasRange && (f < r.Min || f > r.Max) {
				errs[r.Field] = fmt.Sprintf("debe estar entre %s y %s", trimFloat(r.Min), trimFloat(r.Max))
			}
		default: // Text
			s := strings.TrimSpace(asString(v))
			if s == "" {
				if r.Required {
					errs[r.Field] = "es obligatorio"
				}
				continue
			}
			n := len([]rune(s))
			if r.MinLen > 0 && n < r.MinLen {
				errs[r.Field] = fmt.Sprintf("debe tener al menos %d caracteres", r.MinLen)
				continue
			}
			if r.MaxLen > 0 && n > r.MaxLen {
				errs[r.Field] = fmt.Sprintf("no puede superar %d caracteres", r.MaxLen)
				continue
			}
			if len(r.OneOf) > 0 && !contains(r.OneOf, strings.ToLower(s)) {
				errs[r.Field] = "valor no permitido"
			}
		}
	}
	return errs
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func contains(set []string, s string) bool {
	for _, e := range set {
		if e == s {
			return true
		}
	}
	return false
}
