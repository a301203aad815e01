package prosody

import "strings"

// LineAnalysis holds the scansion of a single line of verse.
type LineAnalysis struct {
	// Text is the line as given.
	Text string
	// Tokens are the words found in Text, in order.
	Tokens []string
	// Words are the scanned words. Elision may have merged some tokens.
	Words []Word
	// Errors lists the tokens which could not be syllabified.
	Errors []error
	// Match is the verdict of matching Words against the meter.
	Match MatchResult
}

// Syllables returns the syllables of the line with word boundaries
// dropped.
func (a LineAnalysis) Syllables() []Syllable {
	return Flatten(a.Words)
}

// Pattern renders the quantity marks of the line, one group per word,
// e.g. "-u u-u u-".
func (a LineAnalysis) Pattern() string {
	marks := make([]string, len(a.Words))
	for i, w := range a.Words {
		marks[i] = w.Marks()
	}
	return strings.Join(marks, " ")
}
