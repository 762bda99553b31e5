// Package notation provides move sequence utilities: plain-language
// descriptions and simplification.
package notation

import "github.com/SeamusWaldron/stickercube"

// QuarterTurns returns the signed number of clockwise quarter turns a move
// makes: 1, -1 or 2.
func QuarterTurns(m stickercube.Move) int {
	switch m.Rotation() {
	case stickercube.CounterClockwise:
		return -1
	case stickercube.HalfTurn:
		return 2
	default:
		return 1
	}
}

// FromQuarterTurns builds the move turning axis by n clockwise quarter
// turns. n is reduced mod 4: 3 becomes a single inverted turn. It returns
// false when n reduces to zero.
func FromQuarterTurns(axis stickercube.MoveAxis, n int) (stickercube.Move, bool) {
	n = ((n % 4) + 4) % 4
	switch n {
	case 1:
		return stickercube.Move{Axis: axis}, true
	case 2:
		return stickercube.Move{Axis: axis, Doubled: true}, true
	case 3:
		return stickercube.Move{Axis: axis, Inverted: true}, true
	}
	return stickercube.Move{}, false
}

// Simplify merges runs of adjacent moves on the same axis and drops those
// that cancel. Merging cascades, so "R U U' R'" simplifies to nothing.
// Applying the result to any cube gives the same cube as the input.
func Simplify(moves []stickercube.Move) []stickercube.Move {
	out := make([]stickercube.Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Axis == m.Axis {
			merged, ok := FromQuarterTurns(m.Axis, QuarterTurns(out[n-1])+QuarterTurns(m))
			out = out[:n-1]
			if ok {
				out = append(out, merged)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}
