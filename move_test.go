package stickercube

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseNotationRoundTrip(t *testing.T) {
	moves := ParseMoves("U D F F2 B' R2 L")
	if len(moves) != 7 {
		t.Fatalf("parsed %d moves, want 7", len(moves))
	}

	want := []Move{
		{Axis: MoveU},
		{Axis: MoveD},
		{Axis: MoveF},
		{Axis: MoveF, Doubled: true},
		{Axis: MoveB, Inverted: true},
		{Axis: MoveR, Doubled: true},
		{Axis: MoveL},
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %+v, want %+v", i, moves[i], want[i])
		}
	}

	if got := FormatMoves(moves); got != "U D F F2 B' R2 L" {
		t.Errorf("FormatMoves = %q", got)
	}
}

func TestParseEveryCanonicalToken(t *testing.T) {
	count := 0
	for _, axis := range MoveAxes() {
		for _, suffix := range []string{"", "'", "2"} {
			token := string(axis) + suffix
			m, err := ParseMove(token)
			if err != nil {
				t.Errorf("ParseMove(%q) failed: %v", token, err)
				continue
			}
			if m.Axis != axis {
				t.Errorf("ParseMove(%q).Axis = %q", token, m.Axis)
			}
			if m.Notation() != token {
				t.Errorf("ParseMove(%q).Notation() = %q", token, m.Notation())
			}
			count++
		}
	}
	if count != 54 {
		t.Errorf("recognized %d canonical tokens, want 54", count)
	}
}

func TestParseLowercaseWideAliases(t *testing.T) {
	aliases := map[string]MoveAxis{
		"u": MoveUw, "d": MoveDw, "f": MoveFw,
		"b": MoveBw, "r": MoveRw, "l": MoveLw,
	}
	for letter, axis := range aliases {
		for _, suffix := range []string{"", "'", "2"} {
			lower, err := ParseMove(letter + suffix)
			if err != nil {
				t.Errorf("ParseMove(%q) failed: %v", letter+suffix, err)
				continue
			}
			upper, _ := ParseMove(string(axis) + suffix)
			if lower != upper {
				t.Errorf("%q parsed as %+v, %q as %+v", letter+suffix, lower, string(axis)+suffix, upper)
			}
		}
	}
}

func TestParseMoveModifiers(t *testing.T) {
	m, _ := ParseMove("R")
	if m.Inverted || m.Doubled || m.Rotation() != Clockwise {
		t.Errorf("R = %+v", m)
	}
	m, _ = ParseMove("R'")
	if !m.Inverted || m.Doubled || m.Rotation() != CounterClockwise {
		t.Errorf("R' = %+v", m)
	}
	m, _ = ParseMove("R2")
	if m.Inverted || !m.Doubled || m.Rotation() != HalfTurn {
		t.Errorf("R2 = %+v", m)
	}
}

func TestParseMoveRejects(t *testing.T) {
	for _, token := range []string{"", "Q", "R3", "R''", "R2'", "UW", "X", "m", "Rw3", "RR"} {
		if _, err := ParseMove(token); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) = %v, want ErrInvalidNotation", token, err)
		}
	}
}

func TestParseMovesSkipsUnknownTokens(t *testing.T) {
	moves := ParseMoves("R foo U' 7 M2")
	if got := FormatMoves(moves); got != "R U' M2" {
		t.Errorf("ParseMoves = %q, want %q", got, "R U' M2")
	}
}

func TestParseMovesIdle(t *testing.T) {
	for _, s := range []string{"", "   ", "foo bar", "Q W3 ??"} {
		if moves := ParseMoves(s); len(moves) != 0 {
			t.Errorf("ParseMoves(%q) = %v, want empty", s, moves)
		}
	}
}

func TestParseMovesStrict(t *testing.T) {
	moves, err := ParseMovesStrict("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMovesStrict failed: %v", err)
	}
	if len(moves) != 4 {
		t.Errorf("parsed %d moves, want 4", len(moves))
	}

	_, err = ParseMovesStrict("R U Rx U'")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("expected ErrInvalidNotation, got %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Token != "Rx" || perr.Position != 2 {
		t.Errorf("ParseError = %+v, want token Rx at 2", perr)
	}

	moves, err = ParseMovesStrict("")
	if err != nil || len(moves) != 0 {
		t.Errorf("empty strict parse = %v, %v", moves, err)
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	inv := R2.Inverse()
	if !inv.Doubled || inv.Rotation() != HalfTurn {
		t.Errorf("R2 inverse = %+v, should stay a half turn", inv)
	}
}

func TestInverseSequence(t *testing.T) {
	got := FormatMoves(InverseSequence(ParseMoves("R U2 F' x")))
	if got != "x' F U2 R'" {
		t.Errorf("InverseSequence = %q", got)
	}
}

func TestMoveTokenRoundTrip(t *testing.T) {
	seen := map[uint8]bool{}
	for _, axis := range MoveAxes() {
		for _, m := range []Move{{Axis: axis}, {Axis: axis, Inverted: true}, {Axis: axis, Doubled: true}} {
			token := m.Token()
			if seen[token] {
				t.Errorf("token %d used twice", token)
			}
			seen[token] = true

			back, err := MoveFromToken(token)
			if err != nil {
				t.Errorf("MoveFromToken(%d) failed: %v", token, err)
				continue
			}
			if back != m {
				t.Errorf("token round trip %+v -> %d -> %+v", m, token, back)
			}
		}
	}
	if _, err := MoveFromToken(200); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("MoveFromToken(200) = %v", err)
	}
}

func TestMoveAxisKindAndSelectionSize(t *testing.T) {
	want := map[MoveKind]int{
		KindFace:     21,
		KindWide:     33,
		KindSlice:    12,
		KindRotation: 54,
	}
	facets := New().Facets()
	for _, axis := range MoveAxes() {
		n := 0
		for _, f := range facets {
			if axis.Selects(f.Position) {
				n++
			}
		}
		if n != want[axis.Kind()] {
			t.Errorf("%s (%s) selects %d facets, want %d", axis, axis.Kind(), n, want[axis.Kind()])
		}
	}
}

func TestMoveAxisRotationAxes(t *testing.T) {
	cases := map[MoveAxis]Vector{
		MoveR: XAxis, MoveL: XAxis.Neg(), MoveM: XAxis.Neg(), MoveX: XAxis,
		MoveU: YAxis, MoveD: YAxis.Neg(), MoveE: YAxis.Neg(), MoveY: YAxis,
		MoveF: ZAxis, MoveB: ZAxis.Neg(), MoveS: ZAxis, MoveZ: ZAxis,
		MoveRw: XAxis, MoveLw: XAxis.Neg(), MoveUw: YAxis, MoveDw: YAxis.Neg(),
		MoveFw: ZAxis, MoveBw: ZAxis.Neg(),
	}
	for axis, want := range cases {
		if got := axis.RotationAxis(); got != want {
			t.Errorf("%s.RotationAxis() = %v, want %v", axis, got, want)
		}
	}
}

func TestMoveJSON(t *testing.T) {
	data, err := json.Marshal(Move{Axis: MoveRw, Inverted: true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"axis":"Rw","inverted":true,"doubled":false}` {
		t.Errorf("Marshal = %s", data)
	}

	var m Move
	if err := json.Unmarshal([]byte(`{"axis":"r","inverted":false,"doubled":true}`), &m); err != nil {
		t.Fatalf("Unmarshal alias failed: %v", err)
	}
	if m != (Move{Axis: MoveRw, Doubled: true}) {
		t.Errorf("Unmarshal alias = %+v", m)
	}

	if err := json.Unmarshal([]byte(`{"axis":"Q"}`), &m); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Unmarshal unknown axis = %v", err)
	}
	if _, err := json.Marshal(Move{Axis: "Q"}); err == nil {
		t.Error("Marshal should reject unknown axis")
	}
}

func TestTokenUnknownAxisPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for an unknown axis")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrInvalidMove) {
			t.Errorf("panic value %v does not wrap ErrInvalidMove", r)
		}
	}()
	Move{Axis: "Q"}.Token()
}
