package prosody

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is reported for a word containing a character
// which is neither a vowel nor a consonant.
var ErrInvalidCharacter = errors.New("invalid character")

// ErrEmptyWord is reported when asked to syllabify an empty string.
var ErrEmptyWord = errors.New("empty word")

// WordError describes why a word could not be syllabified.
// No partial syllables are returned alongside it.
type WordError struct {
	// Word is the word as given by the caller.
	Word string
	// Char is the offending character, if any.
	Char rune
	// Pos is the 0-based character (not byte) position of Char in
	// Normalize(Word). It differs from the position in Word when Word
	// holds combining marks.
	Pos int
	// Err is ErrInvalidCharacter or ErrEmptyWord.
	Err error
}

func (e *WordError) Error() string {
	if e.Err == ErrEmptyWord {
		return "syllabify: empty word"
	}
	return fmt.Sprintf("syllabify %q: %v %q at position %d", e.Word, e.Err, e.Char, e.Pos)
}

func (e *WordError) Unwrap() error {
	return e.Err
}
