package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func sq[T number](v T) T {
	return v * v
}

// Point is an integer position on the game map.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec converts the point to a float vector from the origin.
func (p Point) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// String formats the point the way the game expects a destination.
func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Vec is a float 2D vector used for directions and geometric tests.
type Vec struct {
	X float64
	Y float64
}

// Between returns the vector pointing from one point to another.
func Between(from, to Point) Vec {
	return Vec{X: float64(to.X - from.X), Y: float64(to.Y - from.Y)}
}

func (v Vec) Add(u Vec) Vec {
	return Vec{X: v.X + u.X, Y: v.Y + u.Y}
}

func (v Vec) Sub(u Vec) Vec {
	return Vec{X: v.X - u.X, Y: v.Y - u.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

func (v Vec) Dot(u Vec) float64 {
	return v.X*u.X + v.Y*u.Y
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm returns the unit vector of v, or the zero vector when v has no length.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Point truncates both components toward zero.
func (v Vec) Point() Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

// AngleBetween returns the angle in radians in [0, π] between u and v.
// ok is false when either vector has zero length and no angle is defined.
func AngleBetween(u, v Vec) (angle float64, ok bool) {
	lu, lv := u.Len(), v.Len()
	if lu == 0 || lv == 0 {
		return 0, false
	}
	cos := u.Dot(v) / (lu * lv)
	// Rounding can push the cosine just outside acos's domain.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), true
}

func DistSq(a, b Point) int {
	return sq(a.X-b.X) + sq(a.Y-b.Y)
}

func Dist(a, b Point) float64 {
	return math.Sqrt(float64(DistSq(a, b)))
}

// MoveToward steps from towards to by at most limit. A target within reach is
// returned exactly so repeated steps never drift around it.
func MoveToward(from, to Vec, limit float64) Vec {
	dir := to.Sub(from)
	if dir.Len() <= limit {
		return to
	}
	if limit <= 0 {
		return from
	}
	return from.Add(dir.Norm().Scale(limit))
}

// MoveTowardPoint is MoveToward on the integer grid. The step is truncated,
// so a capped move may fall short of limit by less than two units.
func MoveTowardPoint(from, to Point, limit int) Point {
	if DistSq(from, to) <= sq(limit) && limit >= 0 {
		return to
	}
	if limit <= 0 {
		return from
	}
	step := Between(from, to).Norm().Scale(float64(limit)).Point()
	return from.Add(step)
}

// Centroid averages the given points, truncating the result.
func Centroid(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	var sum Vec
	for _, p := range points {
		sum = sum.Add(p.Vec())
	}
	return sum.Scale(1 / float64(len(points))).Point(), true
}
