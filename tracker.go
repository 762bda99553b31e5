package stickercube

// Tracker holds a running Cube value and the moves applied to it.
//
// Cubes themselves are immutable; the Tracker is the caller-side queue that
// applies moves one at a time in order. It is not safe for concurrent use.
type Tracker struct {
	cube          Cube
	history       []Move
	cfg           *config
	phase         Phase
	moveCallback  func(m Move, c Cube)
	phaseCallback func(p Phase)
}

// NewTracker creates a new tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube:  New(),
		cfg:   cfg,
		phase: PhaseSolved,
	}
}

// RestoreTracker creates a tracker from a persisted state.
func RestoreTracker(s State, opts ...Option) (*Tracker, error) {
	c, err := s.Cube()
	if err != nil {
		return nil, err
	}
	t := NewTracker(opts...)
	t.cube = c
	t.phase = c.Phase()
	if t.cfg.moveHistory {
		t.history = append(t.history, s.Moves...)
		t.trimHistory()
	}
	return t, nil
}

// SetMoveCallback sets a callback that fires after each applied move with
// the resulting cube.
func (t *Tracker) SetMoveCallback(cb func(m Move, c Cube)) {
	t.moveCallback = cb
}

// SetPhaseCallback sets a callback that fires when a move changes the
// cube's phase.
func (t *Tracker) SetPhaseCallback(cb func(p Phase)) {
	t.phaseCallback = cb
}

// Reset resets the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube = New()
	t.history = nil
	t.phase = PhaseSolved
}

// ApplyMove applies a move and records it.
func (t *Tracker) ApplyMove(m Move) {
	t.cube = t.cube.Apply(m)
	if t.cfg.moveHistory {
		t.history = append(t.history, m)
		t.trimHistory()
	}
	if t.moveCallback != nil {
		t.moveCallback(m, t.cube)
	}
	t.updatePhase()
}

func (t *Tracker) updatePhase() {
	p := t.cube.Phase()
	if p == t.phase {
		return
	}
	t.phase = p
	if t.phaseCallback != nil {
		t.phaseCallback(p)
	}
}

// ApplyMoves applies multiple moves in order.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// ApplyNotation parses and applies a scramble string, returning the moves
// applied. In strict mode nothing is applied if any token is invalid.
func (t *Tracker) ApplyNotation(s string) ([]Move, error) {
	var moves []Move
	if t.cfg.strictNotation {
		var err error
		if moves, err = ParseMovesStrict(s); err != nil {
			return nil, err
		}
	} else {
		moves = ParseMoves(s)
	}
	t.ApplyMoves(moves)
	return moves, nil
}

// Undo reverts the most recent move. It returns false when there is no
// history to undo.
func (t *Tracker) Undo() (Move, bool) {
	if len(t.history) == 0 {
		return Move{}, false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube = t.cube.Apply(last.Inverse())
	t.updatePhase()
	return last, true
}

func (t *Tracker) trimHistory() {
	if limit := t.cfg.historyLimit; limit > 0 && len(t.history) > limit {
		t.history = append(t.history[:0:0], t.history[len(t.history)-limit:]...)
	}
}

// Moves returns a copy of the recorded history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Phase returns the phase the cube has reached.
func (t *Tracker) Phase() Phase {
	return t.phase
}

// Cube returns the current cube value.
func (t *Tracker) Cube() Cube {
	return t.cube
}

// State returns the persisted form of the current cube and history.
func (t *Tracker) State() State {
	return NewState(t.cube, t.history)
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
