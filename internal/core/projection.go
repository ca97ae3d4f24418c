package core

import "math"

// Projection maps world space onto screen cells. The world origin sits in the
// middle of the screen and Y grows upwards. Terminal cells are roughly twice
// as tall as they are wide, so the two axes scale independently.
type Projection struct {
	Width         int     // Screen width in cells
	Height        int     // Screen height in cells
	CellsPerUnitX float64 // Columns per world unit
	CellsPerUnitY float64 // Rows per world unit
}

// HalfExtents returns half the visible world size.
func (p Projection) HalfExtents() Point {
	return Point{
		X: float64(p.Width) / 2 / p.CellsPerUnitX,
		Y: float64(p.Height) / 2 / p.CellsPerUnitY,
	}
}

// ToCell returns the cell containing the world point.
func (p Projection) ToCell(pt Point) (x, y int) {
	x = int(math.Floor(float64(p.Width)/2 + pt.X*p.CellsPerUnitX))
	y = int(math.Floor(float64(p.Height)/2 - pt.Y*p.CellsPerUnitY))
	return x, y
}

// ToWorld returns the world position of the center of a cell.
func (p Projection) ToWorld(x, y int) Point {
	return Point{
		X: (float64(x) + 0.5 - float64(p.Width)/2) / p.CellsPerUnitX,
		Y: (float64(p.Height)/2 - float64(y) - 0.5) / p.CellsPerUnitY,
	}
}

// RadiusCells returns a world radius in columns and rows.
func (p Projection) RadiusCells(r float64) (rx, ry float64) {
	return r * p.CellsPerUnitX, r * p.CellsPerUnitY
}
