package types

import (
	"errors"
	"strings"
)

// Validation errors
var (
	ErrEmptySubject   = errors.New("subject cannot be empty")
	ErrEmptyPredicate = errors.New("predicate cannot be empty")
	ErrEmptyObject    = errors.New("object cannot be empty")
	ErrEmptyQuestion  = errors.New("question cannot be empty")
)

// FactSeparator joins the three fields of a triple in its text form.
const FactSeparator = " | "

// Triple is a single (subject, predicate, object) fact.
// Two triples are the same fact when all three fields are equal.
type Triple struct {
	Subject   string `json:"subject" yaml:"subject" mapstructure:"subject"`
	Predicate string `json:"predicate" yaml:"predicate" mapstructure:"predicate"`
	Object    string `json:"object" yaml:"object" mapstructure:"object"`
}

// NewTriple creates a triple from its three parts.
func NewTriple(subject, predicate, object string) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// Text returns the canonical fact text "subject | predicate | object",
// which is the unit that gets embedded.
func (t Triple) Text() string {
	return t.Subject + FactSeparator + t.Predicate + FactSeparator + t.Object
}

// Mentions reports whether the entity is the subject or the object of the triple.
func (t Triple) Mentions(entity string) bool {
	return t.Subject == entity || t.Object == entity
}

// Validate checks that no field is empty.
func (t Triple) Validate() error {
	if strings.TrimSpace(t.Subject) == "" {
		return ErrEmptySubject
	}
	if strings.TrimSpace(t.Predicate) == "" {
		return ErrEmptyPredicate
	}
	if strings.TrimSpace(t.Object) == "" {
		return ErrEmptyObject
	}
	return nil
}

// FactTexts returns the fact text of every triple, in order.
func FactTexts(triples []Triple) []string {
	texts := make([]string, len(triples))
	for i, t := range triples {
		texts[i] = t.Text()
	}
	return texts
}
