package prosody

import "strings"

// Quantity is the metrical length of a syllable.
// The underlying rune is the mark used to render it.
type Quantity rune

const (
	Short Quantity = 'u'
	Long  Quantity = '-'

	// Ambiguous marks a syllable whose length depends on context, e.g. a
	// vowel before muta cum liquida. It may become Long by position or
	// stay unresolved through a flexible slot of a meter.
	Ambiguous Quantity = '?'
)

// String returns the scansion mark of q: "-", "u" or "?".
func (q Quantity) String() string {
	switch q {
	case Short, Long, Ambiguous:
		return string(rune(q))
	}
	return ""
}

// Name returns the English name of q.
func (q Quantity) Name() string {
	switch q {
	case Short:
		return "short"
	case Long:
		return "long"
	case Ambiguous:
		return "ambiguous"
	}
	return "unknown"
}

// Syllable is a single syllable of a word.
type Syllable struct {
	// Text is the (non-empty) run of characters making up the syllable.
	// Syllables merged by elision join their texts with ElisionMarker.
	Text string
	// Quantity is the metrical length of the syllable.
	Quantity Quantity
}

// Word is the ordered sequence of syllables of one word.
// An empty Word stands for a word which could not be syllabified.
type Word []Syllable

// Text returns the concatenated syllable texts of w.
func (w Word) Text() string {
	var sb strings.Builder
	for _, s := range w {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Marks renders the quantities of w, one mark per syllable, e.g. "-uu".
func (w Word) Marks() string {
	var sb strings.Builder
	for _, s := range w {
		sb.WriteRune(rune(s.Quantity))
	}
	return sb.String()
}

// Flatten concatenates the syllables of all words, dropping word
// boundaries.
func Flatten(line []Word) []Syllable {
	n := 0
	for _, w := range line {
		n += len(w)
	}
	out := make([]Syllable, 0, n)
	for _, w := range line {
		out = append(out, w...)
	}
	return out
}

// cloneWords returns a deep copy of words, leaving out empty words.
func cloneWords(words []Word) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		out = append(out, append(Word(nil), w...))
	}
	return out
}
