// Package builder defines shared constants used by mesh builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTriangle is the canonical name for the Triangle constructor.
	MethodTriangle = "Triangle"
	// MethodDiamond is the canonical name for the Diamond constructor.
	MethodDiamond = "Diamond"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinWheelNodes is the smallest wheel: a hub plus a triangular rim.
// Complexity impact: Wheel emits n-1 triangles; n >= MinWheelNodes.
const MinWheelNodes = 4

// MinGridDim is the minimum number of cells per grid dimension.
const MinGridDim = 1
