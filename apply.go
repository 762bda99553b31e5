package stickercube

// Apply returns a new cube with m applied. Facets selected by the move's
// axis rotate with it; every other facet is carried over unchanged. The
// receiver is not modified.
//
// An unknown move axis is a programming error and panics with ErrInvalidMove.
func (c Cube) Apply(m Move) Cube {
	axis := m.Axis.RotationAxis()
	angle := m.Rotation()

	facets := make([]Facet, 0, len(c.facets))
	for _, f := range c.facets {
		if m.Axis.Selects(f.Position) {
			f = f.rotate(axis, angle)
		}
		facets = append(facets, f)
	}
	return newCube(facets)
}

// ApplyMoves applies moves left to right. Order matters: turns generally
// do not commute.
func (c Cube) ApplyMoves(moves ...Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// ApplyNotation parses a scramble string and applies it. Unrecognized
// tokens are skipped.
func (c Cube) ApplyNotation(s string) Cube {
	return c.ApplyMoves(ParseMoves(s)...)
}

// ApplyNotationStrict is ApplyNotation but rejects the whole string if any
// token is unrecognized. On error the receiver is returned unchanged.
func (c Cube) ApplyNotationStrict(s string) (Cube, error) {
	moves, err := ParseMovesStrict(s)
	if err != nil {
		return c, err
	}
	return c.ApplyMoves(moves...), nil
}
