package ner

import "strings"

const EntityPrompt = `You are a named-entity tagger. Label every named entity in the user's text. Return a JSON array. Each element must have these fields:

- "text": the entity exactly as it appears in the input (string)
- "label": one of "PERSON", "ORG", "GPE"

Rules:
- PERSON is an individual human being, including couples written as one span ("John & Mary Smith")
- ORG is a company, foundation, agency or other organization
- GPE is a country, state, city or other geopolitical place
- Keep entities in the order they appear; repeat an entity each time it appears
- Do not invent, normalize, or correct spellings
- Return an empty array [] if there are no entities

Respond with ONLY the JSON array, no other text.`

// BuildEntityPrompt wraps the text to tag in delimiters.
func BuildEntityPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString(text)
	sb.WriteString("\n---")
	return sb.String()
}
