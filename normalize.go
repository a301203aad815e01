package prosody

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// foldReplacer folds spellings the syllabifier does not classify into
// their plain equivalents: breves mark short vowels, which are written
// unmarked, and the ligatures æ/œ stand for the diphthongs ae/oe.
var foldReplacer = strings.NewReplacer(
	// lowercase breves
	"ă", "a", // ă → a
	"ĕ", "e", // ĕ → e
	"ĭ", "i", // ĭ → i
	"ŏ", "o", // ŏ → o
	"ŭ", "u", // ŭ → u
	"ў", "y", // ў → y
	// uppercase breves
	"Ă", "A", // Ă → A
	"Ĕ", "E", // Ĕ → E
	"Ĭ", "I", // Ĭ → I
	"Ŏ", "O", // Ŏ → O
	"Ŭ", "U", // Ŭ → U
	"Ў", "Y", // Ў → Y
	// ligatures
	"æ", "ae", // æ → ae
	"Æ", "Ae", // Æ → Ae
	"œ", "oe", // œ → oe
	"Œ", "Oe", // Œ → Oe
	// a combining breve left over after composition (ā̆, common quantity)
	"\u0306", "",
)

// Normalize prepares a word for syllabification. It composes the text to
// NFC, so a vowel followed by a combining macron (U+0304) becomes a single
// precomposed rune, then folds breves and ligatures with foldReplacer.
// Macrons are kept: they carry the vowel lengths.
func Normalize(s string) string {
	return foldReplacer.Replace(norm.NFC.String(s))
}
