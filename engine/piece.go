package engine

import "iter"

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	L
	J
	S
	Z
)

// Kinds lists every piece identity in declaration order.
var Kinds = [...]Kind{I, O, T, L, J, S, Z}

var kindNames = [...]string{"I", "O", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// MaskSize is the edge length of a piece's bounding box.
const MaskSize = 4

// Mask is a row-major occupancy grid: Mask[row][col].
type Mask [MaskSize][MaskSize]bool

var spawnMasks = [...]Mask{
	I: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	O: {
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	T: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	L: {
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	J: {
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	S: {
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	Z: {
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
}

// SpawnMask returns the canonical spawn orientation of kind.
func SpawnMask(kind Kind) Mask {
	return spawnMasks[kind]
}

// Cells yields (row, col) for every filled cell of the mask.
func (m *Mask) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range MaskSize {
			for col := range MaskSize {
				if m[row][col] && !yield(row, col) {
					return
				}
			}
		}
	}
}

// Piece is a shape identity plus its mask in the current rotation.
type Piece struct {
	Kind Kind
	Mask Mask
}

// NewPiece returns kind in its spawn orientation.
func NewPiece(kind Kind) Piece {
	return Piece{Kind: kind, Mask: SpawnMask(kind)}
}

// RotateClockwise turns the mask 90 degrees clockwise about the centre of its
// bounding box. No offset is applied.
func (p *Piece) RotateClockwise() {
	var rotated Mask
	for y := range MaskSize {
		for x := range MaskSize {
			rotated[x][MaskSize-1-y] = p.Mask[y][x]
		}
	}
	p.Mask = rotated
}

// RotateAnticlockwise is the inverse of RotateClockwise.
func (p *Piece) RotateAnticlockwise() {
	var rotated Mask
	for y := range MaskSize {
		for x := range MaskSize {
			rotated[MaskSize-1-x][y] = p.Mask[y][x]
		}
	}
	p.Mask = rotated
}
