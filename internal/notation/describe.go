package notation

import (
	"strings"

	"github.com/SeamusWaldron/stickercube"
)

// phrases holds the plain-language description of each axis, indexed by
// rotation (clockwise, counter-clockwise, half turn).
// Reference frame: White on top, Green in front, facing the cube.
//
// Mapping:
//
//	R  -> "R up"                 R' -> "R down"                    R2 -> "R up x 2"
//	L  -> "L down"               L' -> "L up"                      L2 -> "L down x 2"
//	U  -> "T rotate right"       U' -> "T rotate left"             U2 -> "T rotate right x 2"
//	D  -> "B rotate right"       D' -> "B rotate left"             D2 -> "B rotate right x 2"
//	F  -> "F rotate clockwise"   F' -> "F rotate anti-clockwise"   F2 -> "F rotate x 2"
//	B  -> "Back rotate clockwise"  B' -> "Back rotate anti-clockwise"  B2 -> "Back rotate x 2"
var phrases = map[stickercube.MoveAxis][3]string{
	stickercube.MoveR: {"R up", "R down", "R up x 2"},
	stickercube.MoveL: {"L down", "L up", "L down x 2"},
	stickercube.MoveU: {"T rotate right", "T rotate left", "T rotate right x 2"},
	stickercube.MoveD: {"B rotate right", "B rotate left", "B rotate right x 2"},
	stickercube.MoveF: {"F rotate clockwise", "F rotate anti-clockwise", "F rotate x 2"},
	stickercube.MoveB: {"Back rotate clockwise", "Back rotate anti-clockwise", "Back rotate x 2"},

	stickercube.MoveM: {"middle down", "middle up", "middle down x 2"},
	stickercube.MoveE: {"equator rotate right", "equator rotate left", "equator rotate right x 2"},
	stickercube.MoveS: {"standing rotate clockwise", "standing rotate anti-clockwise", "standing rotate x 2"},
}

// wideFaces maps each wide axis to the face turn it extends.
var wideFaces = map[stickercube.MoveAxis]stickercube.MoveAxis{
	stickercube.MoveRw: stickercube.MoveR,
	stickercube.MoveLw: stickercube.MoveL,
	stickercube.MoveUw: stickercube.MoveU,
	stickercube.MoveDw: stickercube.MoveD,
	stickercube.MoveFw: stickercube.MoveF,
	stickercube.MoveBw: stickercube.MoveB,
}

// Describe converts a move to a plain-language phrase.
func Describe(m stickercube.Move) string {
	r := m.Rotation()
	if p, ok := phrases[m.Axis]; ok {
		return p[r]
	}
	if face, ok := wideFaces[m.Axis]; ok {
		return phrases[face][r] + " (two layers)"
	}
	if m.Axis.Valid() && m.Axis.Kind() == stickercube.KindRotation {
		return "whole cube " + m.Notation()
	}
	return m.Notation() // Fallback to standard notation
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []stickercube.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
