package prosody

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Tokenize splits a line of text into words at UAX #29 word boundaries.
// Segments without letters (spaces, punctuation, digits) are dropped.
// Combining marks stay attached to their letters. Tokenize never fails:
// on a segmenter error the words found before it are returned.
func Tokenize(text string) []string {
	onWords := uax29.NewWordBreaker(1)
	segmenter := segment.NewSegmenter(onWords)
	segmenter.Init(strings.NewReader(text))
	var words []string
	for segmenter.Next() {
		token := segmenter.Text()
		if strings.IndexFunc(token, unicode.IsLetter) < 0 {
			continue
		}
		words = append(words, token)
	}
	// Reading from a strings.Reader does not fail; should the segmenter
	// stop on an error anyway, the words found so far are returned.
	if err := segmenter.Err(); err != nil {
		tracer().Errorf("tokenize %q: %v", text, err)
	}
	return words
}
