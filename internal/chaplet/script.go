// Package chaplet models the Chaplet of St. Michael and walks its fixed
// prayer sequence through a Morse transmitter.
package chaplet

import (
	"errors"
	"fmt"
	"strings"
)

// Language selects which side of the bilingual texts is transmitted.
type Language int

const (
	Latin Language = iota
	English
	Alternating
)

// ParseLanguage maps a configuration string to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latin":
		return Latin, nil
	case "english":
		return English, nil
	case "alternating":
		return Alternating, nil
	default:
		return Latin, fmt.Errorf("unknown language %q (latin, english, alternating)", s)
	}
}

// String implements fmt.Stringer.
func (l Language) String() string {
	switch l {
	case Latin:
		return "latin"
	case English:
		return "english"
	case Alternating:
		return "alternating"
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}

// Text is one prayer in both languages.
type Text struct {
	English string
	Latin   string
}

// In returns the text for a resolved language. Alternating must be
// resolved to Latin or English before lookup; it falls back to Latin.
func (t Text) In(lang Language) string {
	if lang == English {
		return t.English
	}
	return t.Latin
}

// Salutation is one of the nine invocations, one per angelic choir.
type Salutation struct {
	Choir      string
	ChoirLatin string
	Prayer     Text
}

// Dedication names the recipient of one closing Our Father. The label is
// always English, like the cycle headers.
type Dedication struct {
	Name string
}

// Segment is one transmitted slot of the chaplet.
type Segment struct {
	Label string
	Text  Text
}

// Script is the flattened, immutable prayer sequence for one cycle.
type Script struct {
	segments []Segment
}

const (
	choirCount      = 9
	hailMarysPerOur = 3
	dedicationCount = 4
)

// ErrBadScript reports malformed static prayer tables.
var ErrBadScript = errors.New("malformed chaplet script")

// BuildScript flattens the fixed structure into its ordered segments:
// opening, Glory Be, nine salutation blocks (salutation, Our Father, three
// Hail Marys), four dedicated Our Fathers, closing prayer, and the final
// invocation. The static tables are validated once here.
func BuildScript() (*Script, error) {
	if len(salutations) != choirCount {
		return nil, fmt.Errorf("%w: expected %d salutations, have %d", ErrBadScript, choirCount, len(salutations))
	}
	if len(dedications) != dedicationCount {
		return nil, fmt.Errorf("%w: expected %d closing dedications, have %d", ErrBadScript, dedicationCount, len(dedications))
	}

	segments := make([]Segment, 0, 2+choirCount*(2+hailMarysPerOur)+dedicationCount+2)
	segments = append(segments,
		Segment{Label: "Opening", Text: opening},
		Segment{Label: "Glory Be", Text: gloryBe},
	)
	for i, sal := range salutations {
		segments = append(segments, Segment{
			Label: fmt.Sprintf("Salutation %d/%d: %s", i+1, choirCount, sal.Choir),
			Text:  sal.Prayer,
		})
		segments = append(segments, Segment{Label: "Our Father", Text: ourFather})
		for n := 1; n <= hailMarysPerOur; n++ {
			segments = append(segments, Segment{
				Label: fmt.Sprintf("Hail Mary %d/%d", n, hailMarysPerOur),
				Text:  hailMary,
			})
		}
	}
	for _, ded := range dedications {
		segments = append(segments, Segment{
			Label: fmt.Sprintf("Our Father (%s)", ded.Name),
			Text:  ourFather,
		})
	}
	segments = append(segments,
		Segment{Label: "Closing Prayer", Text: closing},
		Segment{Label: "Final Invocation", Text: finalInvocation},
	)

	for _, seg := range segments {
		if seg.Text.English == "" || seg.Text.Latin == "" {
			return nil, fmt.Errorf("%w: segment %q is missing a translation", ErrBadScript, seg.Label)
		}
	}
	return &Script{segments: segments}, nil
}

// Segments returns the ordered slots of one cycle. Callers must not modify
// the returned slice.
func (s *Script) Segments() []Segment {
	return s.segments
}

// Len reports the number of transmitted segments per cycle.
func (s *Script) Len() int {
	return len(s.segments)
}
