package stickercube

// Phase is a stage of the layer-by-layer method. Phases progress from
// PhaseScrambled (0) to PhaseSolved, so they compare with < and >.
//
// The first layer is whatever layer currently faces up. Each facet is
// compared with the center of the face it sits on, never with a fixed
// color, so turning the whole cube about y keeps the phase.
type Phase int

const (
	// PhaseScrambled means not even the cross is built.
	PhaseScrambled Phase = iota

	// PhaseCross means the four up edges match the up center and their
	// side facets match the side centers.
	PhaseCross

	// PhaseFirstLayer means the whole up layer is in place.
	PhaseFirstLayer

	// PhaseSecondLayer means the four middle-layer edges are in place.
	PhaseSecondLayer

	// PhaseLastCross means the four down edges show the down center's
	// color. They may still be permuted.
	PhaseLastCross

	// PhaseCornersPositioned means every down corner is in its home
	// position, possibly twisted.
	PhaseCornersPositioned

	// PhaseCornersOriented means every down corner is solved. Only the
	// down edges may still need cycling.
	PhaseCornersOriented

	// PhaseSolved means every face is uniform.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseCross:
		return "cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseLastCross:
		return "last_cross"
	case PhaseCornersPositioned:
		return "corners_positioned"
	case PhaseCornersOriented:
		return "corners_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCross:
		return "Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseLastCross:
		return "Last Layer Cross"
	case PhaseCornersPositioned:
		return "Last Corners Positioned"
	case PhaseCornersOriented:
		return "Last Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Progress reports which phases are complete. Each phase requires the
// ones before it.
type Progress struct {
	Cross             bool `json:"cross"`
	FirstLayer        bool `json:"first_layer"`
	SecondLayer       bool `json:"second_layer"`
	LastCross         bool `json:"last_cross"`
	CornersPositioned bool `json:"corners_positioned"`
	CornersOriented   bool `json:"corners_oriented"`
	Solved            bool `json:"solved"`
}

// Phase returns the furthest phase the cube has reached.
func (c Cube) Phase() Phase {
	return c.Layout().Phase()
}

// Progress returns which phases are complete.
func (c Cube) Progress() Progress {
	return c.Layout().Progress()
}

// Phase returns the furthest phase the layout has reached.
func (l Layout) Phase() Phase {
	p := l.Progress()
	switch {
	case p.Solved:
		return PhaseSolved
	case p.CornersOriented:
		return PhaseCornersOriented
	case p.CornersPositioned:
		return PhaseCornersPositioned
	case p.LastCross:
		return PhaseLastCross
	case p.SecondLayer:
		return PhaseSecondLayer
	case p.FirstLayer:
		return PhaseFirstLayer
	case p.Cross:
		return PhaseCross
	default:
		return PhaseScrambled
	}
}

// Progress returns which phases are complete.
func (l Layout) Progress() Progress {
	var p Progress
	p.Cross = l.faceMatches(FaceUp, false) && l.sideRowMatches(1, false)
	p.FirstLayer = p.Cross && l.faceMatches(FaceUp, true) && l.sideRowMatches(1, true)
	p.SecondLayer = p.FirstLayer && l.sideRowMatches(0, false)
	p.LastCross = p.SecondLayer && l.faceMatches(FaceDown, false)
	p.CornersPositioned = p.LastCross && l.downCornersPositioned()
	p.CornersOriented = p.CornersPositioned && l.faceMatches(FaceDown, true) && l.sideRowMatches(-1, true)
	p.Solved = l.solved()
	return p
}

const centerIndex = 4

// sideFaces are the faces around the up-down axis.
var sideFaces = [4]Face{FaceFront, FaceRight, FaceBack, FaceLeft}

func isCornerIndex(i int) bool {
	return i != centerIndex && i%2 == 0
}

// faceMatches reports whether the edge (or corner) facets of face show the
// face's center color.
func (l Layout) faceMatches(face Face, corners bool) bool {
	center := l.At(face, centerIndex)
	for i := 0; i < FacetsPerFace; i++ {
		if i == centerIndex || isCornerIndex(i) != corners {
			continue
		}
		if l.At(face, i) != center {
			return false
		}
	}
	return true
}

// sideRowMatches reports whether the side-face edge (or corner) facets at
// height y show their face's center color.
func (l Layout) sideRowMatches(y float64, corners bool) bool {
	for _, face := range sideFaces {
		center := l.At(face, centerIndex)
		for i := 0; i < FacetsPerFace; i++ {
			if i == centerIndex || isCornerIndex(i) != corners {
				continue
			}
			if FacetPosition(face, i).Y != y {
				continue
			}
			if l.At(face, i) != center {
				return false
			}
		}
	}
	return true
}

// downCornersPositioned reports whether each down corner cubie carries the
// colors of the three centers around its home, in any orientation.
func (l Layout) downCornersPositioned() bool {
	for _, x := range []float64{-1, 1} {
		for _, z := range []float64{-1, 1} {
			positions := [3]Vector{
				{X: x, Y: -FaceOffset, Z: z},
				{X: x * FaceOffset, Y: -1, Z: z},
				{X: x, Y: -1, Z: z * FaceOffset},
			}
			var want, got [3]Color
			for i, p := range positions {
				face := FaceOf(p)
				want[i] = l.At(face, centerIndex)
				got[i] = l.At(face, IndexOf(p))
			}
			if !sameColors(want, got) {
				return false
			}
		}
	}
	return true
}

func (l Layout) solved() bool {
	for _, face := range Faces {
		if !l.faceMatches(face, false) || !l.faceMatches(face, true) {
			return false
		}
	}
	return true
}

// sameColors checks if two corners carry the same colors in any order.
func sameColors(a, b [3]Color) bool {
	var count [6]int
	for i := range a {
		count[a[i]]++
		count[b[i]]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}
