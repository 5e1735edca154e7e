package validation

import (
	"net/url"
	"strings"

	"github.com/tailored-agentic-units/speechgate/request"
)

// Predicate checks the credentials one provider needs. Check returns nil
// when satisfied, otherwise the first missing requirement. axis is the
// selection being swept and is reported in the rejection.
type Predicate interface {
	Check(axis Axis, d *request.Descriptor) error
}

// PredicateFunc adapts a function to Predicate.
type PredicateFunc func(axis Axis, d *request.Descriptor) error

func (f PredicateFunc) Check(axis Axis, d *request.Descriptor) error {
	return f(axis, d)
}

// Satisfied requires nothing.
var Satisfied Predicate = PredicateFunc(func(Axis, *request.Descriptor) error { return nil })

// All checks each predicate in order and stops at the first failure.
func All(predicates ...Predicate) Predicate {
	return PredicateFunc(func(axis Axis, d *request.Descriptor) error {
		for _, p := range predicates {
			if err := p.Check(axis, d); err != nil {
				return err
			}
		}
		return nil
	})
}

// When checks p only if cond holds for the descriptor.
func When(cond func(*request.Descriptor) bool, p Predicate) Predicate {
	return Either(cond, p, Satisfied)
}

// Either checks then when cond holds and otherwise checks otherwise.
func Either(cond func(*request.Descriptor) bool, then, otherwise Predicate) Predicate {
	return PredicateFunc(func(axis Axis, d *request.Descriptor) error {
		if cond(d) {
			return then.Check(axis, d)
		}
		return otherwise.Check(axis, d)
	})
}

func ttsIs(t request.TTS) func(*request.Descriptor) bool {
	return func(d *request.Descriptor) bool { return d.TTS == t }
}

func vrIs(v request.VR) func(*request.Descriptor) bool {
	return func(d *request.Descriptor) bool { return d.VR == v }
}

func languageModelIs(m request.LanguageModel) func(*request.Descriptor) bool {
	return func(d *request.Descriptor) bool { return d.LanguageModel == m }
}

// requirements builds field predicates bound to one provider and the
// configured placeholder prefix.
type requirements struct {
	provider string
	prefix   string
}

func (r requirements) missing(axis Axis, field string) *Rejection {
	return &Rejection{Kind: KindMissingCredential, Axis: axis, Provider: r.provider, Field: field}
}

// text requires a configured string value.
func (r requirements) text(field string, get func(*request.Descriptor) string) Predicate {
	return PredicateFunc(func(axis Axis, d *request.Descriptor) error {
		if !configured(get(d), r.prefix) {
			return r.missing(axis, field)
		}
		return nil
	})
}

// positive requires a value strictly greater than zero.
func (r requirements) positive(field string, get func(*request.Descriptor) int64) Predicate {
	return PredicateFunc(func(axis Axis, d *request.Descriptor) error {
		if get(d) <= 0 {
			return r.missing(axis, field)
		}
		return nil
	})
}

// uri requires a parseable URI whose string form is configured. When host is
// non-empty the string form must also contain it.
func (r requirements) uri(field, host string, get func(*request.Descriptor) string) Predicate {
	return PredicateFunc(func(axis Axis, d *request.Descriptor) error {
		raw := get(d)
		if IsNaked(raw) {
			return r.missing(axis, field)
		}

		u, err := url.Parse(raw)
		if err != nil {
			return r.missing(axis, field)
		}

		s := u.String()
		if !configured(s, r.prefix) {
			return r.missing(axis, field)
		}

		if host != "" && !strings.Contains(s, host) {
			return &Rejection{Kind: KindInvalidURIHost, Axis: axis, Provider: r.provider, Field: field}
		}
		return nil
	})
}
