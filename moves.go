package stickercube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube = cube.ApplyMoves(stickercube.R, stickercube.U, stickercube.RPrime, stickercube.UPrime)
var (
	// Right face moves
	R      = Move{Axis: MoveR}                 // Right clockwise
	RPrime = Move{Axis: MoveR, Inverted: true} // Right counter-clockwise
	R2     = Move{Axis: MoveR, Doubled: true}  // Right 180

	// Left face moves
	L      = Move{Axis: MoveL}                 // Left clockwise
	LPrime = Move{Axis: MoveL, Inverted: true} // Left counter-clockwise
	L2     = Move{Axis: MoveL, Doubled: true}  // Left 180

	// Up face moves
	U      = Move{Axis: MoveU}                 // Up clockwise
	UPrime = Move{Axis: MoveU, Inverted: true} // Up counter-clockwise
	U2     = Move{Axis: MoveU, Doubled: true}  // Up 180

	// Down face moves
	D      = Move{Axis: MoveD}                 // Down clockwise
	DPrime = Move{Axis: MoveD, Inverted: true} // Down counter-clockwise
	D2     = Move{Axis: MoveD, Doubled: true}  // Down 180

	// Front face moves
	F      = Move{Axis: MoveF}                 // Front clockwise
	FPrime = Move{Axis: MoveF, Inverted: true} // Front counter-clockwise
	F2     = Move{Axis: MoveF, Doubled: true}  // Front 180

	// Back face moves
	B      = Move{Axis: MoveB}                 // Back clockwise
	BPrime = Move{Axis: MoveB, Inverted: true} // Back counter-clockwise
	B2     = Move{Axis: MoveB, Doubled: true}  // Back 180

	// Slice moves
	M = Move{Axis: MoveM} // Middle, turns like L
	E = Move{Axis: MoveE} // Equator, turns like D
	S = Move{Axis: MoveS} // Standing, turns like F

	// Whole-cube rotations
	X = Move{Axis: MoveX} // Rotate like R
	Y = Move{Axis: MoveY} // Rotate like U
	Z = Move{Axis: MoveZ} // Rotate like F
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
