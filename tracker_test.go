package stickercube

import (
	"errors"
	"testing"
)

func TestTrackerApplyAndUndo(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves(SexyMove)
	if tr.IsSolved() {
		t.Fatal("cube should be scrambled")
	}
	if got := FormatMoves(tr.Moves()); got != "R U R' U'" {
		t.Errorf("Moves() = %q", got)
	}

	for i := 0; i < 4; i++ {
		if _, ok := tr.Undo(); !ok {
			t.Fatalf("Undo %d returned false", i)
		}
	}
	if !tr.IsSolved() {
		t.Error("undoing every move should solve the cube")
	}
	if _, ok := tr.Undo(); ok {
		t.Error("Undo on empty history should return false")
	}
}

func TestTrackerUndoReturnsLastMove(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(F2)
	tr.ApplyMove(RPrime)
	m, ok := tr.Undo()
	if !ok || m != RPrime {
		t.Errorf("Undo() = %v, %v, want R', true", m, ok)
	}
	if !tr.Cube().Equal(New().Apply(F2)) {
		t.Error("cube after undo should equal F2")
	}
}

func TestTrackerHistoryLimit(t *testing.T) {
	tr := NewTracker(WithHistoryLimit(3))
	tr.ApplyMoves(ParseMoves("R U F L D"))
	if got := FormatMoves(tr.Moves()); got != "F L D" {
		t.Errorf("Moves() = %q, want %q", got, "F L D")
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.ApplyMove(R)
	if len(tr.Moves()) != 0 {
		t.Error("history should be empty")
	}
	if _, ok := tr.Undo(); ok {
		t.Error("Undo should fail without history")
	}
	if tr.IsSolved() {
		t.Error("move should still be applied")
	}
}

func TestTrackerApplyNotation(t *testing.T) {
	tr := NewTracker()
	moves, err := tr.ApplyNotation("R junk U")
	if err != nil {
		t.Fatalf("lenient ApplyNotation failed: %v", err)
	}
	if len(moves) != 2 {
		t.Errorf("applied %d moves, want 2", len(moves))
	}

	strict := NewTracker(WithStrictNotation(true))
	_, err = strict.ApplyNotation("R junk U")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Token != "junk" || perr.Position != 1 {
		t.Errorf("ParseError = %+v", perr)
	}
	if !strict.IsSolved() || len(strict.Moves()) != 0 {
		t.Error("strict mode should apply nothing on error")
	}
}

func TestTrackerMoveCallback(t *testing.T) {
	tr := NewTracker()
	var seen []Move
	var last Cube
	tr.SetMoveCallback(func(m Move, c Cube) {
		seen = append(seen, m)
		last = c
	})
	tr.ApplyMoves([]Move{R, U})
	if FormatMoves(seen) != "R U" {
		t.Errorf("callback saw %v", seen)
	}
	if !last.Equal(tr.Cube()) {
		t.Error("callback should receive the cube after the move")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(R)
	tr.Reset()
	if !tr.IsSolved() || len(tr.Moves()) != 0 {
		t.Error("Reset should restore a solved cube with no history")
	}
}

func TestTrackerStateRestore(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves(TPerm)
	tr.ApplyMove(X)

	restored, err := RestoreTracker(tr.State())
	if err != nil {
		t.Fatalf("RestoreTracker failed: %v", err)
	}
	if !restored.Cube().Equal(tr.Cube()) {
		t.Error("restored cube differs")
	}
	if len(restored.Moves()) != len(TPerm)+1 {
		t.Errorf("restored %d moves, want %d", len(restored.Moves()), len(TPerm)+1)
	}

	for range restored.Moves() {
		restored.Undo()
	}
	if !restored.Cube().Equal(New()) {
		t.Error("undoing restored history should return to the initial cube")
	}
}

func TestRestoreTrackerRejectsInvalidState(t *testing.T) {
	s := NewTracker().State()
	s.Version = 0
	if _, err := RestoreTracker(s); !errors.Is(err, ErrInvalidState) {
		t.Errorf("RestoreTracker() = %v, want ErrInvalidState", err)
	}
}

func TestTrackerPhaseCallback(t *testing.T) {
	tr := NewTracker()
	var got []Phase
	tr.SetPhaseCallback(func(p Phase) {
		got = append(got, p)
	})

	tr.ApplyNotation("x")
	tr.ApplyNotation("D")
	tr.ApplyNotation("D'")
	tr.ApplyNotation("R")
	tr.Undo()

	want := []Phase{PhaseLastCross, PhaseSolved, PhaseScrambled, PhaseSolved}
	if len(got) != len(want) {
		t.Fatalf("phase changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %s, want %s", i, got[i], want[i])
		}
	}
	if tr.Phase() != PhaseSolved {
		t.Errorf("Phase() = %s", tr.Phase())
	}
}

func TestRestoreTrackerPhase(t *testing.T) {
	moves := ParseMoves("D2")
	tr, err := RestoreTracker(NewState(New().ApplyMoves(moves...), moves))
	if err != nil {
		t.Fatal(err)
	}
	if tr.Phase() != PhaseLastCross {
		t.Errorf("restored phase = %s, want last_cross", tr.Phase())
	}
}
