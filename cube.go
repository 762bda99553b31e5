package stickercube

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

const (
	// FaceOffset is the distance of every facet from the center along its
	// face normal.
	FaceOffset = 1.5

	// FacetsPerFace is the size of one face's 3x3 grid.
	FacetsPerFace = 9

	// FacetCount is the number of facets on the whole cube.
	FacetCount = 6 * FacetsPerFace
)

// Color represents a facet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Left face when solved
	Red    Color = 5 // Right face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the six puzzle colors.
func (c Color) Valid() bool {
	return c <= Red
}

// ParseColor accepts either the single letter or the color name.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "w", "white":
		return White, nil
	case "y", "yellow":
		return Yellow, nil
	case "g", "green":
		return Green, nil
	case "b", "blue":
		return Blue, nil
	case "o", "orange":
		return Orange, nil
	case "r", "red":
		return Red, nil
	default:
		return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidState, s)
	}
}

// MarshalText encodes the color as its letter.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: unknown color %d", ErrInvalidState, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color letter or name.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Face is one of the six physical faces. The numeric order is also the
// order of face blocks in a Layout.
type Face int

const (
	FaceUp    Face = 0
	FaceDown  Face = 1
	FaceFront Face = 2
	FaceBack  Face = 3
	FaceLeft  Face = 4
	FaceRight Face = 5
)

// Faces lists every face in layout order.
var Faces = [6]Face{FaceUp, FaceDown, FaceFront, FaceBack, FaceLeft, FaceRight}

func (f Face) String() string {
	switch f {
	case FaceUp:
		return "U"
	case FaceDown:
		return "D"
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	case FaceLeft:
		return "L"
	case FaceRight:
		return "R"
	default:
		return "?"
	}
}

// Name returns the lowercase face name.
func (f Face) Name() string {
	switch f {
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "unknown"
	}
}

// SolvedColor returns the color every facet of f carries when solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// ValidPosition checks that p lies on the surface grid: exactly one
// coordinate is ±FaceOffset and the other two are in {-1, 0, 1}.
func ValidPosition(p Vector) error {
	onFace := 0
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		switch {
		case math.Abs(v) == FaceOffset:
			onFace++
		case v == -1 || v == 0 || v == 1:
		default:
			return fmt.Errorf("%w: %v", ErrInvalidGeometry, p)
		}
	}
	if onFace != 1 {
		return fmt.Errorf("%w: %v", ErrInvalidGeometry, p)
	}
	return nil
}

// FaceOf returns the face a surface position sits on. Coordinates are
// checked y first, then x, then z. A position on no face is an internal
// invariant violation and panics with ErrInvalidGeometry.
func FaceOf(p Vector) Face {
	switch {
	case p.Y == FaceOffset:
		return FaceUp
	case p.Y == -FaceOffset:
		return FaceDown
	case p.X == FaceOffset:
		return FaceRight
	case p.X == -FaceOffset:
		return FaceLeft
	case p.Z == FaceOffset:
		return FaceFront
	case p.Z == -FaceOffset:
		return FaceBack
	}
	panic(fmt.Errorf("%w: %v", ErrInvalidGeometry, p))
}

// IndexOf returns the row-major cell (0..8) that p occupies on its face's
// unfolded 3x3 diagram. Row 0 is the visually topmost row.
//
// Each face unfolds around the front face of the net, so its horizontal
// and vertical axes point along different 3D directions:
//
//	up:    h = x,  v = z
//	down:  h = x,  v = -z
//	front: h = x,  v = -y
//	back:  h = -x, v = -y
//	left:  h = z,  v = -y
//	right: h = -z, v = -y
func IndexOf(p Vector) int {
	var h, v float64
	switch FaceOf(p) {
	case FaceUp:
		h, v = p.X, p.Z
	case FaceDown:
		h, v = p.X, -p.Z
	case FaceFront:
		h, v = p.X, -p.Y
	case FaceBack:
		h, v = -p.X, -p.Y
	case FaceLeft:
		h, v = p.Z, -p.Y
	case FaceRight:
		h, v = -p.Z, -p.Y
	}
	return (int(v)+1)*3 + (int(h) + 1)
}

// FacetPosition is the inverse of FaceOf and IndexOf: the surface position
// of cell index on face.
func FacetPosition(face Face, index int) Vector {
	if index < 0 || index >= FacetsPerFace {
		panic(fmt.Errorf("%w: index %d", ErrInvalidGeometry, index))
	}
	h := float64(index%3 - 1)
	v := float64(index/3 - 1)

	switch face {
	case FaceUp:
		return Vector{X: h, Y: FaceOffset, Z: v}.snapped()
	case FaceDown:
		return Vector{X: h, Y: -FaceOffset, Z: -v}.snapped()
	case FaceFront:
		return Vector{X: h, Y: -v, Z: FaceOffset}.snapped()
	case FaceBack:
		return Vector{X: -h, Y: -v, Z: -FaceOffset}.snapped()
	case FaceLeft:
		return Vector{X: -FaceOffset, Y: -v, Z: h}.snapped()
	case FaceRight:
		return Vector{X: FaceOffset, Y: -v, Z: -h}.snapped()
	}
	panic(fmt.Errorf("%w: face %d", ErrInvalidGeometry, int(face)))
}

// Facet is a single colored sticker at a surface position.
type Facet struct {
	Color    Color  `json:"color"`
	Position Vector `json:"position"`
}

// NewFacet returns a facet after checking its color and position.
func NewFacet(c Color, p Vector) (Facet, error) {
	if !c.Valid() {
		return Facet{}, fmt.Errorf("%w: unknown color %d", ErrInvalidCube, c)
	}
	if err := ValidPosition(p); err != nil {
		return Facet{}, err
	}
	return Facet{Color: c, Position: p}, nil
}

// Face returns the face the facet currently sits on.
func (f Facet) Face() Face {
	return FaceOf(f.Position)
}

// Index returns the facet's cell on its face.
func (f Facet) Index() int {
	return IndexOf(f.Position)
}

// Slot returns the facet's index in a Layout: face*9 + index.
func (f Facet) Slot() int {
	return int(f.Face())*FacetsPerFace + f.Index()
}

func (f Facet) rotate(axis Vector, r Rotation) Facet {
	return Facet{Color: f.Color, Position: Rotate(f.Position, axis, r)}
}

func (f Facet) String() string {
	return fmt.Sprintf("%s@%v", f.Color, f.Position)
}

// Cube is the full puzzle state: 54 facets. A Cube is an immutable value;
// every operation that changes the state returns a new Cube.
//
// Facets are kept in slot order so equal states compare equal.
type Cube struct {
	facets []Facet
}

// New returns a solved cube: each face carries its own color.
func New() Cube {
	facets := make([]Facet, 0, FacetCount)
	for _, face := range Faces {
		for i := 0; i < FacetsPerFace; i++ {
			facets = append(facets, Facet{
				Color:    face.SolvedColor(),
				Position: FacetPosition(face, i),
			})
		}
	}
	return Cube{facets: facets}
}

// FromFacets builds a cube from an arbitrary facet collection, checking
// every cube invariant. The input slice is copied.
func FromFacets(facets []Facet) (Cube, error) {
	for _, f := range facets {
		if _, err := NewFacet(f.Color, f.Position); err != nil {
			return Cube{}, err
		}
	}
	c := newCube(slices.Clone(facets))
	if err := c.Validate(); err != nil {
		return Cube{}, err
	}
	return c, nil
}

// newCube takes ownership of facets and puts them in slot order.
func newCube(facets []Facet) Cube {
	slices.SortFunc(facets, func(a, b Facet) int {
		return cmp.Compare(a.Slot(), b.Slot())
	})
	return Cube{facets: facets}
}

// Facets returns a copy of the facets in slot order.
func (c Cube) Facets() []Facet {
	return slices.Clone(c.facets)
}

// Validate checks the three cube invariants: 54 facets, nine of each
// color, and on every face the nine facets fill cells 0..8 exactly once.
func (c Cube) Validate() error {
	if len(c.facets) != FacetCount {
		return fmt.Errorf("%w: %d facets, want %d", ErrInvalidCube, len(c.facets), FacetCount)
	}

	var counts [6]int
	var seen [FacetCount]bool
	for _, f := range c.facets {
		if !f.Color.Valid() {
			return fmt.Errorf("%w: unknown color %d", ErrInvalidCube, f.Color)
		}
		if err := ValidPosition(f.Position); err != nil {
			return err
		}
		counts[f.Color]++

		slot := f.Slot()
		if seen[slot] {
			return fmt.Errorf("%w: two facets at %s%d", ErrInvalidCube, f.Face(), f.Index())
		}
		seen[slot] = true
	}

	for color, n := range counts {
		if n != FacetsPerFace {
			return fmt.Errorf("%w: %d %s facets, want %d", ErrInvalidCube, n, Color(color).Name(), FacetsPerFace)
		}
	}
	return nil
}

// ColorCounts returns how many facets carry each color.
func (c Cube) ColorCounts() [6]int {
	var counts [6]int
	for _, f := range c.facets {
		if f.Color.Valid() {
			counts[f.Color]++
		}
	}
	return counts
}

// Equal reports whether both cubes carry the same color at every position.
func (c Cube) Equal(other Cube) bool {
	return slices.Equal(c.facets, other.facets)
}

// Layout projects the cube into the flattened display order.
func (c Cube) Layout() Layout {
	var l Layout
	for _, f := range c.facets {
		l[f.Slot()] = f.Color
	}
	return l
}

// IsSolved reports whether every face shows a single color. Whole-cube
// rotations do not change the answer.
func (c Cube) IsSolved() bool {
	return c.Layout().solved()
}

// String returns the unfolded net:
//
//	      U
//	L F R B
//	      D
func (c Cube) String() string {
	return c.Layout().Net()
}

// Layout is the flattened display form of a cube: 54 colors grouped in
// face order (U, D, F, B, L, R), nine per face in row-major order.
// Renderers index it as face*9 + index and never need facet geometry.
type Layout [FacetCount]Color

// At returns the color at index on face.
func (l Layout) At(face Face, index int) Color {
	return l[int(face)*FacetsPerFace+index]
}

// Face returns the nine colors of one face.
func (l Layout) Face(face Face) [FacetsPerFace]Color {
	var out [FacetsPerFace]Color
	copy(out[:], l[int(face)*FacetsPerFace:])
	return out
}

// String returns the six face blocks as letters, separated by spaces.
func (l Layout) String() string {
	var b strings.Builder
	for i, color := range l {
		if i > 0 && i%FacetsPerFace == 0 {
			b.WriteByte(' ')
		}
		b.WriteString(color.String())
	}
	return b.String()
}

// Net renders the layout as a text net with U above and D below the
// L F R B row.
func (l Layout) Net() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(l.At(FaceUp, row*3+col).String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			for col := 0; col < 3; col++ {
				b.WriteString(l.At(face, row*3+col).String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(l.At(FaceDown, row*3+col).String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
