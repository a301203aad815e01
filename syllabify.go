package prosody

// state is the kind of nucleus open in the syllable being built.
type state int

const (
	idle            state = iota // no vowel yet
	monophthong                  // one short vowel
	longMonophthong              // one long vowel
	diphthong                    // two-vowel nucleus, closed to extension
)

func (st state) String() string {
	switch st {
	case idle:
		return "idle"
	case monophthong:
		return "monophthong"
	case longMonophthong:
		return "long monophthong"
	case diphthong:
		return "diphthong"
	}
	return "?"
}

// nucleusState returns the state entered by opening a nucleus with v.
func nucleusState(v rune) state {
	if IsLongVowel(v) {
		return longMonophthong
	}
	return monophthong
}

// syllabifier holds the working state of one Syllabify run.
type syllabifier struct {
	word  []rune // materialized characters of the (normalized) word
	pos   int    // index of the character being consumed
	state state
	buf   []rune // characters of the syllable being built
	out   Word
}

// at returns the character at index i, if there is one.
func (s *syllabifier) at(i int) (rune, bool) {
	if i < 0 || i >= len(s.word) {
		return 0, false
	}
	return s.word[i], true
}

// consonantalI reports whether the character at index i is an "i" which
// acts as a consonant. Without orthographic "j" this is a heuristic:
// an "i" before a vowel is consonantal at the start of the word, after
// another vowel (double consonantal i, as in Trōiae), and when a "c"
// follows two places ahead (iaciō and its compounds, e.g. obiectum).
func (s *syllabifier) consonantalI(i int) bool {
	c, ok := s.at(i)
	if !ok || (c != 'i' && c != 'I') {
		return false
	}
	if next, ok := s.at(i + 1); !ok || !IsVowel(next) {
		return false
	}
	if i == 0 {
		return true
	}
	if prev, ok := s.at(i - 1); ok && IsVowel(prev) {
		return true
	}
	third, _ := s.at(i + 2)
	return third == 'c' || third == 'C'
}

// vowelAt reports whether index i holds a vowel, consonantal i excluded.
func (s *syllabifier) vowelAt(i int) bool {
	c, ok := s.at(i)
	return ok && IsVowel(c) && !s.consonantalI(i)
}

// close appends the buffered syllable to the output with quantity q and
// starts a new syllable holding start.
func (s *syllabifier) close(q Quantity, start ...rune) {
	s.out = append(s.out, Syllable{Text: string(s.buf), Quantity: q})
	tracer().Debugf("syllable %q closed as %s", string(s.buf), q.Name())
	s.buf = append(s.buf[:0:0], start...)
}

// nucleusQuantity is the quantity of the buffered syllable by nature.
func (s *syllabifier) nucleusQuantity() Quantity {
	if s.state == longMonophthong || s.state == diphthong {
		return Long
	}
	return Short
}

// Syllabify splits a Latin word into syllables and marks their quantities.
// Vowel lengths are taken from the macrons in word, which must be
// present: no dictionary is consulted. Consonantal "i" is guessed by
// heuristics; spell it "j" for exact results.
//
// If word contains a character which is neither vowel nor consonant, the
// whole word fails with a *WordError wrapping ErrInvalidCharacter.
func Syllabify(word string) (Word, error) {
	s := &syllabifier{word: []rune(Normalize(word))}
	if len(s.word) == 0 {
		return nil, &WordError{Word: word, Err: ErrEmptyWord}
	}
	for ; s.pos < len(s.word); s.pos++ {
		c := s.word[s.pos]
		switch {
		case IsConsonant(c) || s.consonantalI(s.pos):
			s.consonant(c)
		case IsVowel(c):
			s.vowel(c)
		default:
			return nil, &WordError{Word: word, Char: c, Pos: s.pos, Err: ErrInvalidCharacter}
		}
	}
	s.flush()
	return s.out, nil
}

// consonant consumes the consonant c.
func (s *syllabifier) consonant(c rune) {
	if s.state == idle {
		// onset: consonants before the first vowel accumulate
		s.buf = append(s.buf, c)
		return
	}
	next, hasNext := s.at(s.pos + 1)
	switch {
	case isSplit(c):
		end, start, _ := SplitConsonant(c)
		s.buf = append(s.buf, end)
		s.close(Long, start) // long by position
		s.state = idle
	case s.vowelAt(s.pos + 1):
		s.close(s.nucleusQuantity(), c)
		s.state = idle
	case s.vowelAt(s.pos + 2):
		if IsLiquid(next) && next != c {
			// muta cum liquida: the cluster may or may not lengthen
			s.close(Ambiguous, c)
		} else {
			s.buf = append(s.buf, c)
			s.close(Long) // long by position
		}
		s.state = idle
	default:
		s.buf = append(s.buf, c)
		if !hasNext {
			q := Short
			if len(s.buf) > 1 && IsConsonant(s.buf[len(s.buf)-2]) {
				q = Long
			}
			s.close(q)
		}
	}
}

func isSplit(c rune) bool {
	_, _, ok := SplitConsonant(c)
	return ok
}

// vowel consumes the vowel c.
func (s *syllabifier) vowel(c rune) {
	switch s.state {
	case idle:
		// "qu" is an onset; the u does not open the nucleus
		if n := len(s.buf); n > 0 && (s.buf[n-1] == 'q' || s.buf[n-1] == 'Q') && (c == 'u' || c == 'U') {
			s.buf = append(s.buf, c)
			return
		}
		s.buf = append(s.buf, c)
		s.state = nucleusState(c)
	case monophthong, longMonophthong:
		last := s.buf[len(s.buf)-1]
		if FormsDiphthong(last, c) {
			s.buf = append(s.buf, c)
			s.state = diphthong
			return
		}
		q := Short
		if IsLongVowel(last) {
			q = Long
		}
		s.close(q, c)
		s.state = nucleusState(c)
	case diphthong:
		s.close(Long, c)
		s.state = nucleusState(c)
	}
}

// flush closes the syllable still being built at the end of the word.
// A trailing run of consonants without a vowel, as left by a final x
// (rēx → rēc + s), joins the preceding syllable.
func (s *syllabifier) flush() {
	if len(s.buf) == 0 {
		return
	}
	if s.state == idle && len(s.out) > 0 && !containsVowel(s.buf) {
		last := &s.out[len(s.out)-1]
		last.Text += string(s.buf)
		s.buf = s.buf[:0]
		return
	}
	s.close(s.nucleusQuantity())
}

func containsVowel(rs []rune) bool {
	for _, r := range rs {
		if IsVowel(r) {
			return true
		}
	}
	return false
}
