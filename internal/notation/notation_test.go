package notation

import (
	"testing"

	"github.com/SeamusWaldron/stickercube"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"R", "R"},
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R R R", ""},
		{"U' U'", "U2"},
		{"R2 R2", ""},
		{"R2 R'", "R"},
		{"R U U' R'", ""},
		{"R L R", "R L R"},
		{"x x y y' z", "x2 z"},
		{"r Rw", "Rw2"},
		{"M M' E S2 S2 F", "E F"},
	}

	for _, tt := range tests {
		got := stickercube.FormatMoves(Simplify(stickercube.ParseMoves(tt.in)))
		if got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyPreservesCube(t *testing.T) {
	scrambles := []string{
		"R R U U U F' F' L2 L D D' B",
		"Uw Uw Uw M M E' E' E' x x S",
		"R U R' U' U R U' R'",
	}
	for _, s := range scrambles {
		moves := stickercube.ParseMoves(s)
		simplified := Simplify(moves)
		if len(simplified) > len(moves) {
			t.Errorf("Simplify(%q) grew the sequence", s)
		}
		a := stickercube.New().ApplyMoves(moves...)
		b := stickercube.New().ApplyMoves(simplified...)
		if !a.Equal(b) {
			t.Errorf("Simplify(%q) = %q changes the resulting cube", s, stickercube.FormatMoves(simplified))
		}
	}
}

func TestQuarterTurns(t *testing.T) {
	if n := QuarterTurns(stickercube.R); n != 1 {
		t.Errorf("R = %d", n)
	}
	if n := QuarterTurns(stickercube.RPrime); n != -1 {
		t.Errorf("R' = %d", n)
	}
	if n := QuarterTurns(stickercube.R2); n != 2 {
		t.Errorf("R2 = %d", n)
	}
}

func TestFromQuarterTurns(t *testing.T) {
	tests := []struct {
		n    int
		want string
		ok   bool
	}{
		{0, "", false},
		{1, "U", true},
		{2, "U2", true},
		{3, "U'", true},
		{4, "", false},
		{-1, "U'", true},
		{-2, "U2", true},
		{-3, "U", true},
		{7, "U'", true},
	}
	for _, tt := range tests {
		m, ok := FromQuarterTurns(stickercube.MoveU, tt.n)
		if ok != tt.ok {
			t.Errorf("FromQuarterTurns(U, %d) ok = %v, want %v", tt.n, ok, tt.ok)
			continue
		}
		if ok && m.Notation() != tt.want {
			t.Errorf("FromQuarterTurns(U, %d) = %s, want %s", tt.n, m, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := map[string]string{
		"R":  "R up",
		"R'": "R down",
		"L2": "L down x 2",
		"U":  "T rotate right",
		"D'": "B rotate left",
		"F":  "F rotate clockwise",
		"B'": "Back rotate anti-clockwise",
		"Rw": "R up (two layers)",
		"u'": "T rotate left (two layers)",
		"M":  "middle down",
		"E2": "equator rotate right x 2",
		"S'": "standing rotate anti-clockwise",
		"x":  "whole cube x",
		"y'": "whole cube y'",
		"z2": "whole cube z2",
	}
	for token, want := range tests {
		m, err := stickercube.ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", token, err)
		}
		if got := Describe(m); got != want {
			t.Errorf("Describe(%s) = %q, want %q", token, got, want)
		}
	}
}

func TestDescribeSequence(t *testing.T) {
	got := DescribeSequence(stickercube.SexyMove)
	want := "R up, T rotate right, R down, T rotate left"
	if got != want {
		t.Errorf("DescribeSequence = %q, want %q", got, want)
	}
	if DescribeSequence(nil) != "" {
		t.Error("empty sequence should describe as empty string")
	}
}

func TestDescribeEveryMove(t *testing.T) {
	for _, axis := range stickercube.MoveAxes() {
		for _, m := range []stickercube.Move{{Axis: axis}, {Axis: axis, Inverted: true}, {Axis: axis, Doubled: true}} {
			if Describe(m) == "" {
				t.Errorf("Describe(%s) is empty", m)
			}
		}
	}
}
