package ner

import (
	"context"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer runs the in-process prose tagger. prose emits PERSON and
// GPE labels; it has no ORG category.
type ProseRecognizer struct {
	model *prose.Model
}

// NewProseRecognizer returns a recognizer using model, or prose's bundled
// model when model is nil. The model is built once and shared by every call.
func NewProseRecognizer(model *prose.Model) *ProseRecognizer {
	if model == nil {
		model = bundledModel()
	}
	return &ProseRecognizer{model: model}
}

// bundledModel materializes prose's embedded tagger and classifier.
func bundledModel() *prose.Model {
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil
	}
	return doc.Model
}

// LoadProseModel reads a model previously written with Model.Write.
func LoadProseModel(dir string) *prose.Model {
	return prose.ModelFromDisk(dir)
}

func (r *ProseRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, &RecognitionError{Backend: "prose", Err: err}
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.UsingModel(r.model),
	)
	if err != nil {
		return nil, &RecognitionError{Backend: "prose", Err: err}
	}

	var out []Entity
	for _, ent := range doc.Entities() {
		out = append(out, Entity{Text: ent.Text, Label: Label(ent.Label)})
	}
	return out, nil
}
