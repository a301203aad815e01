package prosody

import "fmt"

// Slot is one position of a foot template.
type Slot rune

const (
	SlotLong   Slot = '-'
	SlotShort  Slot = 'u'
	SlotEither Slot = 'x' // anceps: any quantity
)

// accepts reports whether a syllable of quantity q fits slot sl.
func (sl Slot) accepts(q Quantity) bool {
	switch sl {
	case SlotEither:
		return true
	case SlotLong:
		return q == Long
	case SlotShort:
		return q == Short
	}
	return false
}

// Template is the slot pattern of a foot, e.g. "-uu" for a dactyl.
type Template []Slot

func (t Template) String() string {
	return string(t)
}

// matchesTail reports whether t fits the last len(t) syllables of syls.
func (t Template) matchesTail(syls []Syllable) bool {
	if len(syls) < len(t) {
		return false
	}
	tail := syls[len(syls)-len(t):]
	for i := len(t) - 1; i >= 0; i-- {
		if !t[i].accepts(tail[i].Quantity) {
			return false
		}
	}
	return true
}

// Group is a named, ordered list of alternative templates for one foot.
// The first template that fits wins.
type Group struct {
	Name      string
	Templates []Template
}

func group(name string, patterns ...string) Group {
	g := Group{Name: name}
	for _, p := range patterns {
		g.Templates = append(g.Templates, Template(p))
	}
	return g
}

// Foot groups of dactylic verse.
var (
	Spondee = group("spondee", "--", "-x", "x-")

	// FinalSpondee adds brevis in longo: the last syllable of a line
	// counts as long even when short.
	FinalSpondee = group("final spondee", "--", "-x", "x-", "-u", "xu")
	Dactyl       = group("dactyl", "-uu", "-xu", "-ux", "xuu")
)

// step applies the first matching group, in order, Repeat times.
type step struct {
	Groups []Group
	Repeat int
}

// Meter identifies a verse meter.
type Meter int

const (
	Hexameter Meter = iota
)

func (m Meter) String() string {
	switch m {
	case Hexameter:
		return "hexameter"
	}
	return fmt.Sprintf("Meter(%d)", int(m))
}

// recipes lists, per meter, the feet to match from the end of the line.
var recipes = map[Meter][]step{
	Hexameter: {
		{Groups: []Group{FinalSpondee}, Repeat: 1},
		{Groups: []Group{Dactyl, Spondee}, Repeat: 5},
	},
}

// Meters returns the supported meters.
func Meters() []Meter {
	return []Meter{Hexameter}
}

// Foot is a foot matched in a line.
type Foot struct {
	// Group is the name of the foot group which matched, e.g. "dactyl".
	Group string
	// Template is the template of the group which matched.
	Template Template
	// Syllables are the syllables the foot covers.
	Syllables []Syllable
}

// MatchResult is the verdict of matching a line against a meter.
type MatchResult struct {
	Valid bool
	// Feet lists the feet matched, in line order. On failure it holds the
	// feet matched from the end of the line before matching stopped.
	Feet []Foot
	// Reason says why the line does not scan; empty when Valid.
	Reason string
}

// Matches reports whether line scans as meter. Unsupported meters never
// match.
func Matches(line []Word, meter Meter) bool {
	return Match(line, meter).Valid
}

// Match matches line against meter. Word boundaries are ignored: the
// syllables are matched foot by foot from the end of the line, each foot
// consuming the syllables of the first template which fits. The line
// scans if every foot matches and no syllable is left over.
func Match(line []Word, meter Meter) MatchResult {
	recipe, ok := recipes[meter]
	if !ok {
		return MatchResult{Reason: fmt.Sprintf("unsupported meter %s", meter)}
	}
	rest := Flatten(line)
	if len(rest) == 0 {
		return MatchResult{Reason: "empty line"}
	}
	total := 0
	for _, st := range recipe {
		total += st.Repeat
	}
	var feet []Foot // matched from the end, reversed below
	fail := func(reason string) MatchResult {
		return MatchResult{Feet: reverseFeet(feet), Reason: reason}
	}
	for _, st := range recipe {
		for i := 0; i < st.Repeat; i++ {
			number := total - len(feet)
			if len(rest) == 0 {
				return fail(fmt.Sprintf("line too short: foot %d missing", number))
			}
			foot, ok := matchFoot(st.Groups, rest)
			if !ok {
				return fail(fmt.Sprintf("foot %d unmatched", number))
			}
			tracer().Debugf("foot %d: %s %s", number, foot.Group, foot.Template)
			rest = rest[:len(rest)-len(foot.Template)]
			feet = append(feet, foot)
		}
	}
	if len(rest) > 0 {
		if len(rest) == 1 {
			return fail("1 syllable left over")
		}
		return fail(fmt.Sprintf("%d syllables left over", len(rest)))
	}
	return MatchResult{Valid: true, Feet: reverseFeet(feet)}
}

// matchFoot tries groups in order and returns the first fitting foot at
// the end of syls.
func matchFoot(groups []Group, syls []Syllable) (Foot, bool) {
	for _, g := range groups {
		for _, t := range g.Templates {
			if t.matchesTail(syls) {
				return Foot{
					Group:     g.Name,
					Template:  t,
					Syllables: syls[len(syls)-len(t):],
				}, true
			}
		}
	}
	return Foot{}, false
}

func reverseFeet(feet []Foot) []Foot {
	out := make([]Foot, len(feet))
	for i, f := range feet {
		out[len(feet)-1-i] = f
	}
	return out
}
