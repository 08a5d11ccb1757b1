package scaffold

import "github.com/gertd/go-pluralize"

// EnglishPluralizer applies English inflection rules.
type EnglishPluralizer struct {
	client *pluralize.Client
}

// NewPluralizer returns the default English pluralizer.
func NewPluralizer() *EnglishPluralizer {
	return &EnglishPluralizer{client: pluralize.NewClient()}
}

// Plural returns the plural form of word. Multi-word labels are inflected
// on their last word.
func (p *EnglishPluralizer) Plural(word string) string {
	return p.client.Plural(word)
}
