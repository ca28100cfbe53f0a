// Package keywords derives the keyword set the error detectors and memory
// retrieval match against. Everything here is pure and allocation-light.
package keywords

import (
	"strings"
	"unicode"

	"github.com/bnema/athena-partnership/internal/domain"
)

const minMessageWordLength = 5

var stopwords = map[string]struct{}{
	"about": {}, "after": {}, "again": {}, "before": {}, "being": {}, "could": {},
	"every": {}, "other": {}, "should": {}, "their": {}, "there": {}, "these": {},
	"thing": {}, "things": {}, "those": {}, "under": {}, "until": {}, "where": {},
	"which": {}, "while": {}, "would": {}, "please": {},
}

// Extract returns the deduplicated, lower-cased keyword set for a task, the
// user's message and optional mesh intelligence tags, in first-seen order.
func Extract(task, userMessage string, mesh *domain.MeshIntelligence) []string {
	set := newOrderedSet()

	for _, token := range CamelCaseTokens(task) {
		set.add(strings.ToLower(token))
	}
	for _, word := range MessageWords(userMessage) {
		set.add(word)
	}
	if mesh != nil {
		for _, tag := range mesh.Goals {
			set.add(normalizeTag(tag))
		}
		for _, tag := range mesh.Domains {
			set.add(normalizeTag(tag))
		}
	}

	return set.values
}

// CamelCaseTokens returns identifier-like tokens with at least one interior
// case hump ("PartnershipCoordinator", "parseJSON", "HTTPServer"). Plain
// capitalised words and all-caps acronyms are ignored. Hyphens split tokens.
func CamelCaseTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if isCamelCase(field) {
			tokens = append(tokens, field)
		}
	}

	return tokens
}

// MessageWords returns lower-cased words of five or more letters, excluding
// common stopwords. Digits and punctuation, hyphens included, split words.
func MessageWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if len([]rune(field)) < minMessageWordLength {
			continue
		}
		lower := strings.ToLower(field)
		if _, skip := stopwords[lower]; skip {
			continue
		}
		words = append(words, lower)
	}

	return words
}

// Overlap is the fraction of want found in have.
func Overlap(have, want []string) float64 {
	if len(want) == 0 {
		return 0
	}

	index := make(map[string]struct{}, len(have))
	for _, h := range have {
		index[h] = struct{}{}
	}

	hits := 0
	for _, w := range want {
		if _, ok := index[w]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(want))
}

func isCamelCase(token string) bool {
	runes := []rune(token)
	hasLower := false
	for _, r := range runes {
		if unicode.IsLower(r) {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return false
	}

	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}
		prev := runes[i-1]
		if unicode.IsLower(prev) || unicode.IsDigit(prev) {
			return true
		}
		if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			return true
		}
	}

	return false
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}, values: []string{}}
}

func (s *orderedSet) add(value string) {
	if value == "" {
		return
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.values = append(s.values, value)
}
