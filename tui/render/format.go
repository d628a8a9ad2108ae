package render

import (
	"math/rand/v2"

	"github.com/alice-ws/aliceterm/domain"
)

const (
	tagObjection = "objection"
	tagRoll      = "roll"
)

// directiveKind is the decoded meaning of a segment's tag list.
type directiveKind int

const (
	directiveStyled directiveKind = iota
	directiveObjection
	directiveRoll
)

type directive struct {
	kind    directiveKind
	classes []string
}

// decodeDirective dispatches on the first tag. Any other tag list, including
// nil or empty, is styled text carrying every tag as a class.
func decodeDirective(tags []string) directive {
	if len(tags) > 0 {
		switch tags[0] {
		case tagObjection:
			return directive{kind: directiveObjection}
		case tagRoll:
			return directive{kind: directiveRoll}
		}
	}
	return directive{kind: directiveStyled, classes: append([]string(nil), tags...)}
}

// Roller produces die results in [0, 5].
type Roller interface {
	Roll() int
}

// RollerFunc adapts a function to Roller.
type RollerFunc func() int

func (f RollerFunc) Roll() int { return f() }

// UniformRoller draws each of the six outcomes with equal probability.
type UniformRoller struct{}

func (UniformRoller) Roll() int { return rand.IntN(6) }

// Formatter interprets a post's comment segments.
type Formatter struct {
	objection string
	roller    Roller
}

// NewFormatter creates a formatter. objectionURL is the already resolved
// objection asset; a nil roller uses UniformRoller.
func NewFormatter(objectionURL string, roller Roller) Formatter {
	if roller == nil {
		roller = UniformRoller{}
	}
	return Formatter{objection: objectionURL, roller: roller}
}

// Format returns the post's comment as a flat, ordered node sequence.
func (f Formatter) Format(p domain.Post) []Node {
	if len(p.CommentSegments) == 0 {
		return []Node{PlainText{Text: p.Comment}}
	}

	out := make([]Node, 0, len(p.CommentSegments))
	for _, seg := range p.CommentSegments {
		d := decodeDirective(seg.Format)
		switch d.kind {
		case directiveObjection:
			out = append(out, EmbeddedObjection{Asset: f.objection})
		case directiveRoll:
			out = append(out, DiceRoll{Value: clampRoll(f.roller.Roll())})
		default:
			out = append(out, StyledText{Classes: d.classes, Text: seg.Text})
		}
	}
	return out
}

func clampRoll(v int) int {
	return min(max(v, 0), 5)
}
