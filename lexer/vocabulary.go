package lexer

import (
	"slices"
	"sort"
)

// Classifier resolves an identifier to a category.
type Classifier interface {
	Classify(ident string) (Category, bool)
}

// VocabularyCategory is a named, immutable set of identifiers that all
// classify to the same token category.
type VocabularyCategory struct {
	Name     string
	Category Category
	words    map[string]struct{}
}

// NewVocabularyCategory builds a category from words.
func NewVocabularyCategory(name string, category Category, words ...string) VocabularyCategory {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return VocabularyCategory{Name: name, Category: category, words: set}
}

// Contains reports whether word belongs to the category.
func (c VocabularyCategory) Contains(word string) bool {
	_, ok := c.words[word]
	return ok
}

// Len returns the number of words in the category.
func (c VocabularyCategory) Len() int {
	return len(c.words)
}

// Words returns the category's words in sorted order.
func (c VocabularyCategory) Words() []string {
	out := make([]string, 0, len(c.words))
	for word := range c.words {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

func (c VocabularyCategory) with(words []string) VocabularyCategory {
	merged := make(map[string]struct{}, len(c.words)+len(words))
	for word := range c.words {
		merged[word] = struct{}{}
	}
	for _, word := range words {
		merged[word] = struct{}{}
	}
	return VocabularyCategory{Name: c.Name, Category: c.Category, words: merged}
}

// Vocabulary checks identifiers against its categories in priority order;
// the first category containing the identifier wins.
type Vocabulary struct {
	categories []VocabularyCategory
}

// NewVocabulary returns a vocabulary consulting categories in the given
// order.
func NewVocabulary(categories ...VocabularyCategory) *Vocabulary {
	return &Vocabulary{categories: slices.Clone(categories)}
}

// Classify implements Classifier.
func (v *Vocabulary) Classify(ident string) (Category, bool) {
	entry, ok := v.Lookup(ident)
	if !ok {
		return "", false
	}
	return entry.Category, true
}

// Lookup returns the highest-priority category containing ident.
func (v *Vocabulary) Lookup(ident string) (VocabularyCategory, bool) {
	for _, entry := range v.categories {
		if entry.Contains(ident) {
			return entry, true
		}
	}
	return VocabularyCategory{}, false
}

// Categories returns the categories in priority order.
func (v *Vocabulary) Categories() []VocabularyCategory {
	return slices.Clone(v.categories)
}

// Extend returns a copy of v with extra words added to existing categories,
// keyed by category name. Unknown names are returned so callers can report
// them.
func (v *Vocabulary) Extend(extra map[string][]string) (*Vocabulary, []string) {
	out := &Vocabulary{categories: make([]VocabularyCategory, len(v.categories))}
	known := make(map[string]struct{}, len(v.categories))
	for idx, entry := range v.categories {
		known[entry.Name] = struct{}{}
		if words, ok := extra[entry.Name]; ok {
			entry = entry.with(words)
		}
		out.categories[idx] = entry
	}
	var unknown []string
	for name := range extra {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return out, unknown
}

// Classify returns an action that emits the whole match with the category
// chosen by classifier, or fallback when the classifier has no opinion.
func Classify(classifier Classifier, fallback Category) Action {
	return func(m Match) []Piece {
		if category, ok := classifier.Classify(m.Text); ok {
			return []Piece{{Category: category, Value: m.Text}}
		}
		return []Piece{{Category: fallback, Value: m.Text}}
	}
}
