package ner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxEntityLen bounds the text of an entity returned by a remote backend.
const MaxEntityLen = 200

var validLabels = map[Label]bool{
	Person: true,
	Org:    true,
	GPE:    true,
}

var injectionPattern = regexp.MustCompile(
	`(?i)(ignore\s+(previous|all|above)|system\s*prompt|you\s+are\s+now|` +
		`act\s+as\s+|pretend\s+|forget\s+(everything|all)|override|` +
		`new\s+instructions)`,
)

// ValidateEntity checks an entity produced by a remote model. Returns true
// if valid. The text is trimmed in place.
func ValidateEntity(e *Entity) bool {
	if e == nil {
		return false
	}
	e.Text = strings.TrimSpace(e.Text)
	n := utf8.RuneCountInString(e.Text)
	if n == 0 || n > MaxEntityLen {
		return false
	}
	if !validLabels[e.Label] {
		return false
	}
	if strings.ContainsAny(e.Text, "\n\r") {
		return false
	}
	// Drop spans that echo instructions back.
	if injectionPattern.MatchString(e.Text) {
		return false
	}
	return true
}
