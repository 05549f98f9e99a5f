// Package tiers partitions the names on a page by the pricing headings
// ("$500 Patrons", "Gold Sponsors - $1,000") they appear under.
package tiers

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/donorscan/internal/document"
	"github.com/dgallion1/donorscan/internal/names"
)

const (
	// CurrencyMarker marks a heading as a pricing tier.
	CurrencyMarker = "$"
	// MaxHeadingLen is the exclusive upper bound on a tier heading's length.
	MaxHeadingLen = 50
)

var (
	// HeadingTags are searched for tier headings first.
	HeadingTags = document.NewTagSet("h1", "h2", "h3", "h4", "div")
	// InlineTags widen the search when no heading tag carries a price.
	InlineTags = document.NewTagSet("span", "p")
)

// Assignment records a name and the tier it was found under. Tier is
// empty for names found outside any tier.
type Assignment struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

// Map is a tier-to-names mapping that remembers the order tiers were opened.
type Map struct {
	order []string
	names map[string][]string
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{names: make(map[string][]string)}
}

// open registers tier if it is new. A repeated heading reuses the existing
// entry, so later sections extend it.
func (m *Map) open(tier string) {
	if _, ok := m.names[tier]; ok {
		return
	}
	m.order = append(m.order, tier)
	m.names[tier] = []string{}
}

func (m *Map) extend(tier string, found []string) {
	m.names[tier] = append(m.names[tier], found...)
}

// Tiers returns tier labels in the order they were first encountered.
func (m *Map) Tiers() []string {
	return append([]string(nil), m.order...)
}

// Names returns the names under tier.
func (m *Map) Names(tier string) []string {
	return m.names[tier]
}

// Len returns the number of tiers.
func (m *Map) Len() int {
	return len(m.order)
}

// Dedupe removes repeated names within each tier.
func (m *Map) Dedupe() *Map {
	out := NewMap()
	for _, t := range m.order {
		out.open(t)
		out.extend(t, names.Dedupe(m.names[t]))
	}
	return out
}

// MarshalJSON writes a JSON object whose keys follow tier order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		vals, err := json.Marshal(m.names[t])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(vals)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Segmentation is the raw output of a Segmenter run.
type Segmentation struct {
	Tiers       *Map
	Assignments []Assignment
}

// Segmenter finds tier headings and collects the names in the sibling
// blocks that follow each one.
type Segmenter struct {
	Filter *names.Filter
}

// NewSegmenter returns a Segmenter that scans tier blocks with filter.
func NewSegmenter(filter *names.Filter) *Segmenter {
	return &Segmenter{Filter: filter}
}

// Segment walks root. candidates are the page-wide names collected
// beforehand; every scanned element that carries no price records all of
// them with an empty tier. Tier lists are not deduplicated here.
func (s *Segmenter) Segment(root *document.Node, candidates []string) Segmentation {
	out := Segmentation{Tiers: NewMap()}
	if root == nil {
		return out
	}

	tags := HeadingTags
	elems := root.FindAll(tags)
	if !anyPriced(elems) {
		tags = tags.Union(InlineTags)
		elems = root.FindAll(tags)
	}

	for _, el := range elems {
		text := names.Normalize(el.Text())
		priced := strings.Contains(text, CurrencyMarker)

		switch {
		case priced && utf8.RuneCountInString(text) < MaxHeadingLen:
			out.Tiers.open(text)
			for _, found := range s.section(el, tags) {
				out.Tiers.extend(text, []string{found})
				out.Assignments = append(out.Assignments, Assignment{Name: found, Tier: text})
			}
		case !priced:
			for _, c := range candidates {
				out.Assignments = append(out.Assignments, Assignment{Name: c})
			}
		}
	}
	return out
}

// section scans the siblings after heading until the next element whose
// tag is in boundary. Bare text nodes are skipped.
func (s *Segmenter) section(heading *document.Node, boundary document.TagSet) []string {
	var found []string
	for _, sib := range heading.FollowingSiblings() {
		if sib.IsText() {
			continue
		}
		if boundary.Has(sib.Tag) {
			break
		}
		found = append(found, s.Filter.Scan(sib.Text())...)
	}
	return found
}

func anyPriced(elems []*document.Node) bool {
	for _, el := range elems {
		if strings.Contains(el.Text(), CurrencyMarker) {
			return true
		}
	}
	return false
}
