// Package provider defines the normalized result types returned by external
// translation providers, independent of any concrete provider's wire format.
package provider

// WordCandidate is a (text, language) pair referenced by a fetch result.
// Candidates are raw provider output: not yet normalized or deduplicated.
type WordCandidate struct {
	Word     string
	Language string
}

// FetchedTranslation is the normalized result of one provider lookup for a
// (word, source language, target language) triple.
type FetchedTranslation struct {
	Word           string
	SourceLanguage string
	TargetLanguage string

	Translations []WordCandidate
	Synonyms     []WordCandidate
	Definitions  []string
	Examples     []string
}
