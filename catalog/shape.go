package catalog

import "github.com/katalvlaran/poolcheck/pool"

// Shape classifies an item by how its codes relate to each other.
type Shape uint8

const (
	// Invalid is the shape of the empty item.
	Invalid Shape = iota
	// Single items hold one code.
	Single
	// SharedRow items hold the two codes of one row ({AC,AD} or {BC,BD}).
	SharedRow
	// SharedCol items hold the two codes of one column ({AC,BC} or {AD,BD}).
	SharedCol
	// Diagonal items hold two codes sharing neither row nor column.
	Diagonal
	// Triple items hold three codes.
	Triple
	// Full items hold all four codes.
	Full
)

var shapeNames = [...]string{"invalid", "single", "shared-row", "shared-col", "diagonal", "triple", "full"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}

	return "shape?"
}

var shapes = [pool.NumItemMasks]Shape{
	0x1: Single, 0x2: Single, 0x4: Single, 0x8: Single,
	0x3: SharedRow, 0xC: SharedRow,
	0x5: SharedCol, 0xA: SharedCol,
	0x6: Diagonal, 0x9: Diagonal,
	0x7: Triple, 0xB: Triple, 0xD: Triple, 0xE: Triple,
	0xF: Full,
}

// ShapeOf returns the shape of it.
func ShapeOf(it pool.Item) Shape {
	if !it.Valid() {
		return Invalid
	}

	return shapes[it]
}

// Missing returns the absent code of a Triple item. ok is false for any
// other shape.
func Missing(it pool.Item) (code pool.Code, ok bool) {
	if ShapeOf(it) != Triple {
		return 0, false
	}
	for code = 0; code < pool.NumCodes; code++ {
		if !it.Has(code) {
			return code, true
		}
	}

	return 0, false
}

// Opposite returns the code sharing neither row nor column with code
// (AC↔BD, AD↔BC).
func Opposite(code pool.Code) pool.Code {
	return pool.NumCodes - 1 - code
}
