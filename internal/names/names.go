// Package names holds the lexical heuristics that turn recognized text spans
// into candidate person names.
package names

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Normalize collapses every whitespace run to a single space and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Bounds is an inclusive character-length range. Max <= 0 means unbounded.
type Bounds struct {
	Min int
	Max int
}

var (
	// BlockNameBounds applies to names found in page blocks and tier sections.
	BlockNameBounds = Bounds{Min: 8, Max: 20}
	// LooseNameBounds applies to the simple whole-text run.
	LooseNameBounds = Bounds{Min: 2}
)

func (b Bounds) quantifier() string {
	if b.Max <= 0 {
		return fmt.Sprintf("{%d,}", b.Min)
	}
	return fmt.Sprintf("{%d,%d}", b.Min, b.Max)
}

// nameClass is the only character class a name may contain.
const nameClass = `[A-Za-z .&]`

// Filter decides whether a string is shaped like a person's name.
type Filter struct {
	Bounds       Bounds
	RejectDigits bool

	full  *regexp.Regexp
	token *regexp.Regexp
}

// NewFilter compiles a Filter for the given bounds.
func NewFilter(b Bounds, rejectDigits bool) *Filter {
	q := b.quantifier()
	return &Filter{
		Bounds:       b,
		RejectDigits: rejectDigits,
		full:         regexp.MustCompile(`^` + nameClass + q + `$`),
		token:        regexp.MustCompile(`\b` + nameClass + q + `\b`),
	}
}

var (
	// BlockFilter is used for page blocks and tier sections.
	BlockFilter = NewFilter(BlockNameBounds, true)
	// LooseFilter is used for the simple whole-text run.
	LooseFilter = NewFilter(LooseNameBounds, false)
)

// Accept reports whether s looks like a person name: only name characters,
// within bounds, mixed case and (optionally) digit-free.
func (f *Filter) Accept(s string) bool {
	if !f.full.MatchString(s) {
		return false
	}
	if f.RejectDigits && strings.IndexFunc(s, unicode.IsDigit) >= 0 {
		return false
	}
	if strings.ToUpper(s) == s || strings.ToLower(s) == s {
		return false
	}
	return true
}

// Scan pulls bounded name tokens out of free text and keeps those the
// filter accepts, in encounter order. Matches are trimmed before filtering.
func (f *Filter) Scan(text string) []string {
	var out []string
	for _, m := range f.token.FindAllString(Normalize(text), -1) {
		m = strings.TrimSpace(m)
		if f.Accept(m) {
			out = append(out, m)
		}
	}
	return out
}

// Dedupe removes later duplicates, keeping the first occurrence of each value.
func Dedupe[T comparable](in []T) []T {
	seen := make(map[T]bool, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

var fragmentSplit = regexp.MustCompile(`[&,|/]`)

// Fragments splits text on the delimiters that commonly separate co-listed
// names and companies. Empty fragments are dropped.
func Fragments(text string) []string {
	var out []string
	for _, part := range fragmentSplit.Split(text, -1) {
		if p := Normalize(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
