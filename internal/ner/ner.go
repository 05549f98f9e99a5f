// Package ner wraps named-entity recognition backends behind one interface.
package ner

import (
	"context"
	"fmt"
)

// Label is the semantic category of a recognized span.
type Label string

const (
	Person Label = "PERSON"
	Org    Label = "ORG"
	GPE    Label = "GPE"
)

// Entity is one labeled span of text.
type Entity struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
}

// Recognizer labels spans of text. Implementations must be safe for
// concurrent use; each call is independent.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, text string) ([]Entity, error)

func (f RecognizerFunc) Recognize(ctx context.Context, text string) ([]Entity, error) {
	return f(ctx, text)
}

// RecognitionError reports a failure inside a recognizer backend.
type RecognitionError struct {
	Backend string
	Err     error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognize (%s): %v", e.Backend, e.Err)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// Keep returns the entities whose label is one of labels, preserving order.
func Keep(entities []Entity, labels ...Label) []Entity {
	var out []Entity
	for _, e := range entities {
		for _, l := range labels {
			if e.Label == l {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
