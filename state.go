package stickercube

import "fmt"

// StateVersion is the current persisted-state format version.
const StateVersion = 1

// State is the plain-data form of a cube and its move history. It carries
// everything needed to rebuild an exact Cube and is ready for any encoder;
// the package itself performs no I/O.
type State struct {
	Version int     `json:"version"`
	Facets  []Facet `json:"facets"`
	Moves   []Move  `json:"moves"`
}

// NewState captures c and the moves that produced it.
func NewState(c Cube, history []Move) State {
	moves := make([]Move, len(history))
	copy(moves, history)
	return State{
		Version: StateVersion,
		Facets:  c.Facets(),
		Moves:   moves,
	}
}

// Validate checks the version, every move axis, and the cube invariants.
func (s State) Validate() error {
	_, err := s.Cube()
	return err
}

// Cube rebuilds the cube, checking every invariant.
func (s State) Cube() (Cube, error) {
	if s.Version != StateVersion {
		return Cube{}, fmt.Errorf("%w: version %d, want %d", ErrInvalidState, s.Version, StateVersion)
	}
	for i, m := range s.Moves {
		if !m.Axis.Valid() {
			return Cube{}, fmt.Errorf("%w: move %d: unknown axis %q", ErrInvalidState, i, string(m.Axis))
		}
	}
	c, err := FromFacets(s.Facets)
	if err != nil {
		return Cube{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return c, nil
}
