package prosody

import (
	"unicode"
	"unicode/utf8"
)

// longVowels is the inventory of macron-marked Latin vowels.
var longVowels = map[rune]bool{
	'ā': true, 'ē': true, 'ō': true, 'ī': true, 'ū': true, 'ȳ': true,
	'Ā': true, 'Ē': true, 'Ō': true, 'Ī': true, 'Ū': true, 'Ȳ': true,
}

// shortVowels is the inventory of unmarked Latin vowels.
var shortVowels = map[rune]bool{
	'a': true, 'e': true, 'o': true, 'i': true, 'u': true, 'y': true,
	'A': true, 'E': true, 'O': true, 'I': true, 'U': true, 'Y': true,
}

// diphthongs lists the Latin diphthongs. Latin has no triphthongs.
var diphthongs = map[[2]rune]bool{
	{'a', 'e'}: true,
	{'a', 'u'}: true,
	{'e', 'i'}: true,
	{'e', 'u'}: true,
	{'o', 'e'}: true,
}

// greekLetters lists the digraphs transliterating a single Greek letter.
// "kh" is sometimes seen in place of "ch".
var greekLetters = map[string]bool{
	"th": true, "ch": true, "kh": true, "ph": true, "ps": true, "rh": true,
}

// IsLongVowel reports whether c is a Latin vowel carrying a macron.
func IsLongVowel(c rune) bool {
	return longVowels[c]
}

// IsVowel reports whether c is a Latin vowel, with or without macron.
func IsVowel(c rune) bool {
	return shortVowels[c] || longVowels[c]
}

// IsConsonant reports whether c is a Latin letter which is not a vowel.
// Only ASCII letters qualify; "w" is treated like any other consonant.
func IsConsonant(c rune) bool {
	return ('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') && !IsVowel(c)
}

// IsLiquid reports whether c is r or l.
func IsLiquid(c rune) bool {
	switch c {
	case 'r', 'R', 'l', 'L':
		return true
	}
	return false
}

// FormsDiphthong reports whether the vowel pair first, second forms one of
// the diphthongs ae, au, ei, eu and oe. Case is ignored.
func FormsDiphthong(first, second rune) bool {
	return diphthongs[[2]rune{unicode.ToLower(first), unicode.ToLower(second)}]
}

// SplitConsonant splits a double consonant into its phonetic components.
// Only x (and X) is split, into c and s; ok is false for every other rune.
func SplitConsonant(c rune) (end, start rune, ok bool) {
	switch c {
	case 'x', 'X':
		return 'c', 's', true
	}
	return 0, 0, false
}

// IsGreekLetter reports whether s is the transliteration of a Greek letter
// (th, ch, kh, ph, ps, rh).
func IsGreekLetter(s string) bool {
	return greekLetters[s]
}

// StartsWithVowel reports whether s begins with a vowel. An "i" directly
// followed by another vowel is a consonantal onset and does not count.
func StartsWithVowel(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !IsVowel(first) {
		return false
	}
	if first == 'i' || first == 'I' {
		second, n := utf8.DecodeRuneInString(s[size:])
		return n == 0 || !IsVowel(second)
	}
	return true
}

// StartsWithScanConsonant reports whether s begins with a consonant which
// counts for lengthening by position. h is transparent and does not count.
func StartsWithScanConsonant(s string) bool {
	if StartsWithVowel(s) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	return first != 'h' && first != 'H'
}

// IsOpen reports whether the syllable ends in a vowel or diphthong.
func IsOpen(s Syllable) bool {
	last, size := utf8.DecodeLastRuneInString(s.Text)
	return size > 0 && IsVowel(last)
}
