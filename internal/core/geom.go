// Package core provides the fundamental types of the Line Zen simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Point is a position in world space. World space is centered on the screen,
// with Y growing upwards.
type Point struct {
	X, Y float64
}

// Pt creates a new point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the length of p seen as a vector.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// GuideLine is a purely visual segment from level data. It never takes part
// in collision.
type GuideLine struct {
	A, B Point
}

// projection returns the unit direction of start->end, the segment length and
// the scalar position of p along that direction measured from start.
// start == end yields NaN components.
func projection(start, end, p Point) (dir Point, length, t float64) {
	diff := end.Sub(start)
	length = diff.Len()
	dir = Point{X: diff.X / length, Y: diff.Y / length}
	t = dir.X*(p.X-start.X) + dir.Y*(p.Y-start.Y)
	return dir, length, t
}

// ClosestPointOnSegment projects p onto the infinite line through start and end.
// The projection is not clamped to the segment.
//
// start and end must differ; a degenerate segment produces NaN coordinates.
func ClosestPointOnSegment(start, end, p Point) Point {
	dir, _, t := projection(start, end, p)
	return start.Add(dir.Scale(t))
}

// SegmentTouchesCircle reports whether the circle at center is within
// triggerRadius of the line through start and end.
//
// With cull set, the projection of center must also fall within the segment
// extended by shapeRadius on both ends, so a circle just past a tip still
// registers. Without cull only the distance to the infinite line matters.
//
// start and end must differ.
func SegmentTouchesCircle(start, end, center Point, triggerRadius, shapeRadius float64, cull bool) bool {
	dir, length, t := projection(start, end, center)

	if cull && (t > length+shapeRadius || t < -shapeRadius) {
		return false
	}

	closest := start.Add(dir.Scale(t))
	return closest.Dist(center) <= triggerRadius
}

// IsWithinRadiusOfSegment reports whether p lies within triggerRadius of the
// infinite line through start and end. Segment extent is ignored.
func IsWithinRadiusOfSegment(start, end, p Point, triggerRadius float64) bool {
	return SegmentTouchesCircle(start, end, p, triggerRadius, 0, false)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
