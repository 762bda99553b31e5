package stickercube

import (
	"fmt"
	"strings"
)

// MoveAxis names a turnable layer set in standard notation.
type MoveAxis string

const (
	// Single-layer face turns
	MoveU MoveAxis = "U"
	MoveD MoveAxis = "D"
	MoveF MoveAxis = "F"
	MoveB MoveAxis = "B"
	MoveR MoveAxis = "R"
	MoveL MoveAxis = "L"

	// Wide turns: the face plus the adjacent middle layer
	MoveUw MoveAxis = "Uw"
	MoveDw MoveAxis = "Dw"
	MoveFw MoveAxis = "Fw"
	MoveBw MoveAxis = "Bw"
	MoveRw MoveAxis = "Rw"
	MoveLw MoveAxis = "Lw"

	// Whole-cube rotations
	MoveX MoveAxis = "x"
	MoveY MoveAxis = "y"
	MoveZ MoveAxis = "z"

	// Slice turns
	MoveM MoveAxis = "M"
	MoveE MoveAxis = "E"
	MoveS MoveAxis = "S"
)

// moveAxes is the closed set of move axes, in token order.
var moveAxes = []MoveAxis{
	MoveU, MoveD, MoveF, MoveB, MoveR, MoveL,
	MoveUw, MoveDw, MoveFw, MoveBw, MoveRw, MoveLw,
	MoveX, MoveY, MoveZ,
	MoveM, MoveE, MoveS,
}

// MoveAxes returns every move axis.
func MoveAxes() []MoveAxis {
	out := make([]MoveAxis, len(moveAxes))
	copy(out, moveAxes)
	return out
}

// MoveKind groups move axes by how many layers they turn.
type MoveKind int

const (
	KindFace MoveKind = iota
	KindWide
	KindSlice
	KindRotation
)

func (k MoveKind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindWide:
		return "wide"
	case KindSlice:
		return "slice"
	case KindRotation:
		return "rotation"
	default:
		return "unknown"
	}
}

// Valid reports whether a is a known move axis.
func (a MoveAxis) Valid() bool {
	for _, known := range moveAxes {
		if a == known {
			return true
		}
	}
	return false
}

// Kind returns the category of the axis.
func (a MoveAxis) Kind() MoveKind {
	switch a {
	case MoveU, MoveD, MoveF, MoveB, MoveR, MoveL:
		return KindFace
	case MoveUw, MoveDw, MoveFw, MoveBw, MoveRw, MoveLw:
		return KindWide
	case MoveM, MoveE, MoveS:
		return KindSlice
	case MoveX, MoveY, MoveZ:
		return KindRotation
	}
	panic(fmt.Errorf("%w: %q", ErrInvalidMove, string(a)))
}

// RotationAxis returns the axis a clockwise turn of a rotates about. Slices
// follow the face they sit next to: M turns like L, E like D, S like F.
func (a MoveAxis) RotationAxis() Vector {
	switch a {
	case MoveR, MoveRw, MoveX:
		return XAxis
	case MoveL, MoveLw, MoveM:
		return XAxis.Neg()
	case MoveU, MoveUw, MoveY:
		return YAxis
	case MoveD, MoveDw, MoveE:
		return YAxis.Neg()
	case MoveF, MoveFw, MoveZ, MoveS:
		return ZAxis
	case MoveB, MoveBw:
		return ZAxis.Neg()
	}
	panic(fmt.Errorf("%w: %q", ErrInvalidMove, string(a)))
}

// Selects reports whether a facet at p turns with a.
func (a MoveAxis) Selects(p Vector) bool {
	switch a {
	case MoveR:
		return p.X > 0
	case MoveL:
		return p.X < 0
	case MoveU:
		return p.Y > 0
	case MoveD:
		return p.Y < 0
	case MoveF:
		return p.Z > 0
	case MoveB:
		return p.Z < 0
	case MoveRw:
		return p.X >= 0
	case MoveLw:
		return p.X <= 0
	case MoveUw:
		return p.Y >= 0
	case MoveDw:
		return p.Y <= 0
	case MoveFw:
		return p.Z >= 0
	case MoveBw:
		return p.Z <= 0
	case MoveM:
		return p.X == 0
	case MoveE:
		return p.Y == 0
	case MoveS:
		return p.Z == 0
	case MoveX, MoveY, MoveZ:
		return true
	}
	panic(fmt.Errorf("%w: %q", ErrInvalidMove, string(a)))
}

// MarshalText rejects unknown axes so a bad history is never persisted.
func (a MoveAxis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMove, string(a))
	}
	return []byte(a), nil
}

// UnmarshalText decodes an axis tag. Lowercase wide aliases are accepted.
func (a *MoveAxis) UnmarshalText(b []byte) error {
	s := string(b)
	if alias, ok := wideAliases[s]; ok {
		*a = alias
		return nil
	}
	if !MoveAxis(s).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	*a = MoveAxis(s)
	return nil
}

// wideAliases maps the lowercase single-letter wide spellings.
var wideAliases = map[string]MoveAxis{
	"u": MoveUw,
	"d": MoveDw,
	"f": MoveFw,
	"b": MoveBw,
	"r": MoveRw,
	"l": MoveLw,
}

// Move is a single turn: an axis plus direction flags. Doubled means a
// half turn and overrides Inverted.
type Move struct {
	Axis     MoveAxis `json:"axis"`
	Inverted bool     `json:"inverted"`
	Doubled  bool     `json:"doubled"`
}

// Rotation returns the turn angle selected by the flags.
func (m Move) Rotation() Rotation {
	switch {
	case m.Doubled:
		return HalfTurn
	case m.Inverted:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, Uw', x2, M
func (m Move) Notation() string {
	suffix := ""
	switch {
	case m.Doubled:
		suffix = "2"
	case m.Inverted:
		suffix = "'"
	}
	return string(m.Axis) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	m.Inverted = !m.Inverted
	return m
}

// InverseSequence returns the moves that undo moves, in application order.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Token encodes the move as a single byte for compact history storage.
// Encoding: axis*3 + turn_code where axis is the index in token order and
// turn_code is CW=0, CCW=1, 180=2. It panics with ErrInvalidMove for an
// unknown axis.
func (m Move) Token() uint8 {
	for i, a := range moveAxes {
		if a == m.Axis {
			return uint8(i)*3 + uint8(m.Rotation())
		}
	}
	panic(fmt.Errorf("%w: %q", ErrInvalidMove, string(m.Axis)))
}

// MoveFromToken decodes a token produced by Token.
func MoveFromToken(token uint8) (Move, error) {
	axisCode := int(token / 3)
	if axisCode >= len(moveAxes) {
		return Move{}, fmt.Errorf("%w: token %d", ErrInvalidMove, token)
	}
	m := Move{Axis: moveAxes[axisCode]}
	switch Rotation(token % 3) {
	case CounterClockwise:
		m.Inverted = true
	case HalfTurn:
		m.Doubled = true
	}
	return m, nil
}

// notationTable maps every recognized token to its move.
var notationTable = buildNotationTable()

func buildNotationTable() map[string]Move {
	table := make(map[string]Move, 3*(len(moveAxes)+len(wideAliases)))
	add := func(base string, axis MoveAxis) {
		table[base] = Move{Axis: axis}
		table[base+"'"] = Move{Axis: axis, Inverted: true}
		table[base+"2"] = Move{Axis: axis, Doubled: true}
	}
	for _, axis := range moveAxes {
		add(string(axis), axis)
	}
	for alias, axis := range wideAliases {
		add(alias, axis)
	}
	return table
}

// ParseMove parses a single notation token: a move letter (case matters;
// lowercase face letters are wide moves) followed by an optional ' or 2.
// Returns ErrInvalidNotation if the token is not recognized.
func ParseMove(s string) (Move, error) {
	m, ok := notationTable[strings.TrimSpace(s)]
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Unrecognized tokens are skipped; use ParseMovesStrict to reject them.
func ParseMoves(s string) []Move {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue // Skip invalid moves
		}
		moves = append(moves, move)
	}

	return moves
}

// ParseMovesStrict parses a space-separated sequence of moves and fails on
// the first unrecognized token with a *ParseError.
func ParseMovesStrict(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, &ParseError{Token: part, Position: i}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
