// Package prosody scans Latin verse. It splits words into syllables,
// marks each syllable long, short or ambiguous, applies the rules working
// across word boundaries (lengthening by position and elision), and
// matches the resulting line against a meter. Dactylic hexameter is the
// only meter defined.
//
// Vowel lengths are not derived from a dictionary: the text must carry
// its macrons (ā ē ī ō ū ȳ, precomposed or with a combining U+0304).
//
// The engine is pure and synchronous; all functions are safe for
// concurrent use.
package prosody

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// AnalyzeLine scans a line of verse given as raw text: it tokenizes the
// text, syllabifies every word, scans the words (with elision if elide is
// set) and matches the result against dactylic hexameter.
//
// Words which cannot be syllabified are reported in Errors and left out
// of the scan.
func AnalyzeLine(text string, elide bool) LineAnalysis {
	a := LineAnalysis{Text: text, Tokens: Tokenize(text)}
	syllabified := make([]Word, 0, len(a.Tokens))
	for _, token := range a.Tokens {
		w, err := Syllabify(token)
		if err != nil {
			tracer().Infof("skipping %q: %v", token, err)
			a.Errors = append(a.Errors, err)
			continue
		}
		syllabified = append(syllabified, w)
	}
	a.Words = Scan(syllabified, elide)
	a.Match = Match(a.Words, Hexameter)
	return a
}
