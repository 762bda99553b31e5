// Package stickercube models the state of a 3x3 twisty puzzle as 54
// colored facets in 3-space, and the algebra of moves that transform it.
//
// # Features
//
//   - Facet geometry: every sticker is a point; its face and grid cell are
//     derived from its coordinates
//   - Face, wide, slice and whole-cube moves in standard notation
//   - Immutable cube values: applying a move returns a new Cube
//   - Flattened 54-color layout for renderers
//   - Plain-data state for persistence, with validation on restore
//
// # Quick Start
//
//	cube := stickercube.New()
//
//	// Apply moves using predefined constants
//	cube = cube.ApplyMoves(stickercube.R, stickercube.U, stickercube.RPrime, stickercube.UPrime)
//
//	// Or from notation
//	cube = cube.ApplyNotation("F B2 L' D Rw M' x")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Geometry
//
// The cube is centered on the origin with x to the right, y up and z toward
// the viewer. Cubie centers sit on {-1, 0, 1}; each facet sits at ±1.5 along
// its face normal, with its other two coordinates in {-1, 0, 1}. A move
// selects facets by position and rotates them about the move's axis.
//
// # Notation
//
// A token is one move letter with an optional ' (counter-clockwise) or 2
// (half turn): U D F B R L, wide Uw Dw Fw Bw Rw Lw (or u d f b r l),
// rotations x y z and slices M E S. ParseMoves skips tokens it does not
// recognize; ParseMovesStrict reports them as a *ParseError.
//
// # Layout
//
// Cube.Layout returns 54 colors in face order U, D, F, B, L, R, nine per
// face in row-major order of the unfolded net. The color of cell i on face
// f is at f*9 + i.
package stickercube
