package prosody

import (
	"errors"
	"unicode/utf8"
)

// ElisionMarker joins the texts of two syllables merged by elision.
const ElisionMarker = "_"

// Scan applies the rules working across word boundaries to a line of
// syllabified words, left to right:
//
//   - lengthening by position: a final syllable which is not yet long
//     becomes long before a word starting with consonants ("–C C–" and
//     "–V CC–"); a stop followed by a liquid leaves it ambiguous instead.
//   - elision, if elide is set: a final vowel, or vowel + m, before a word
//     starting with a vowel merges with that word's first syllable, and
//     the rest of that word continues the preceding one.
//
// The words passed in are not modified. Empty words are skipped.
func Scan(words []Word, elide bool) []Word {
	line := cloneWords(words)
	for i := 1; i < len(line); i++ {
		prev := line[i-1]
		lengthen(&prev[len(prev)-1], line[i][0])
	}
	if !elide {
		return line
	}
	return elideWords(line)
}

// lengthen revises the quantity of prev, the final syllable of a word,
// from the first syllable next of the following word.
func lengthen(prev *Syllable, next Syllable) {
	if prev.Quantity == Long {
		return
	}
	last, _ := utf8.DecodeLastRuneInString(prev.Text)
	if IsConsonant(last) && StartsWithScanConsonant(next.Text) {
		// –C C–
		prev.Quantity = Long
		return
	}
	first, size := utf8.DecodeRuneInString(next.Text)
	rest := next.Text[size:]
	if IsConsonant(first) && StartsWithScanConsonant(rest) {
		// –V CC–
		second, _ := utf8.DecodeRuneInString(rest)
		if second != first && IsLiquid(second) {
			prev.Quantity = Ambiguous
		} else {
			prev.Quantity = Long
		}
	}
}

// elideWords performs the elisions of line, merging words in place.
func elideWords(line []Word) []Word {
	out := make([]Word, 0, len(line))
	for _, w := range line {
		n := len(out)
		if n == 0 {
			out = append(out, w)
			continue
		}
		prev := out[n-1]
		last := &prev[len(prev)-1]
		if !elides(*last, w[0]) {
			out = append(out, w)
			continue
		}
		tracer().Debugf("elision %q + %q", last.Text, w[0].Text)
		last.Text += ElisionMarker + w[0].Text
		last.Quantity = w[0].Quantity
		out[n-1] = append(prev, w[1:]...)
	}
	return out
}

// elides reports whether the final syllable prev is elided before the
// initial syllable next: "–V V–" or "–Vm V–".
func elides(prev, next Syllable) bool {
	if !StartsWithVowel(next.Text) {
		return false
	}
	if IsOpen(prev) {
		return true
	}
	last, size := utf8.DecodeLastRuneInString(prev.Text)
	if last != 'm' && last != 'M' {
		return false
	}
	beforeLast, n := utf8.DecodeLastRuneInString(prev.Text[:len(prev.Text)-size])
	return n > 0 && IsVowel(beforeLast)
}

// ScanWords syllabifies each of words and scans the result. Words which
// cannot be syllabified are left out of the scan; their errors are
// returned joined.
func ScanWords(words []string, elide bool) ([]Word, error) {
	syllabified := make([]Word, 0, len(words))
	var errs []error
	for _, w := range words {
		sw, err := Syllabify(w)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		syllabified = append(syllabified, sw)
	}
	return Scan(syllabified, elide), errors.Join(errs...)
}
