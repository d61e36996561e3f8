// Package transform applies affine transformations to model vertex sets.
//
// A model is a plain []Point owned by the caller; every operation mutates
// the points in place and never reallocates the slice. Three strategies
// cover the supported transforms (Rotator, Mover, Scaler) and a Transformer
// dispatches requests to whichever strategy is currently selected.
package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is one model vertex. It is an mgl64.Vec3, so coordinates are
// addressable both by index (matching Axis) and through the X/Y/Z methods.
type Point = mgl64.Vec3

// Pt is shorthand for constructing a Point.
func Pt(x, y, z float64) Point {
	return Point{x, y, z}
}

// Strategy is one transformation algorithm. Transform mutates every point
// in place; the meaning of value depends on kind. Implementations must
// reject kinds outside their set with ErrKind before touching any point, so
// a failed call leaves the sequence untouched.
type Strategy interface {
	Transform(points []Point, kind Kind, value float64) error
}

// Rotator rotates a vertex set about the world X, Y, or Z axis, pivoting
// at the origin. The value is an angle in degrees; negative angles reverse
// direction and magnitudes beyond 360 wrap through trigonometric
// periodicity.
type Rotator struct{}

func (Rotator) Transform(points []Point, kind Kind, angleDegrees float64) error {
	if !kind.IsRotate() {
		return fmt.Errorf("rotate: %w: %s", ErrKind, kind)
	}
	axis, _ := kind.Axis()

	var m mgl64.Mat3
	switch axis {
	case AxisX:
		m = mgl64.Rotate3DX(mgl64.DegToRad(angleDegrees))
	case AxisY:
		m = mgl64.Rotate3DY(mgl64.DegToRad(angleDegrees))
	case AxisZ:
		m = mgl64.Rotate3DZ(mgl64.DegToRad(angleDegrees))
	}
	for i := range points {
		points[i] = m.Mul3x1(points[i])
	}
	return nil
}

// Mover translates a vertex set by a fixed step along one axis. A zero
// step is the identity and a negative step moves the opposite way.
type Mover struct{}

func (Mover) Transform(points []Point, kind Kind, step float64) error {
	if !kind.IsTranslate() {
		return fmt.Errorf("move: %w: %s", ErrKind, kind)
	}
	axis, _ := kind.Axis()
	for i := range points {
		points[i][axis] += step
	}
	return nil
}

// Scaler uniformly scales a vertex set about the origin. Factor 1 is the
// identity, factor 0 collapses the model to the origin, and a negative
// factor mirrors it through the origin; none of these are rejected, the
// caller decides acceptable ranges.
type Scaler struct{}

func (Scaler) Transform(points []Point, kind Kind, factor float64) error {
	if kind != Scale {
		return fmt.Errorf("scale: %w: %s", ErrKind, kind)
	}
	for i := range points {
		points[i] = points[i].Mul(factor)
	}
	return nil
}

// StrategyFor returns the strategy that handles kind.
func StrategyFor(kind Kind) (Strategy, error) {
	switch {
	case kind.IsTranslate():
		return Mover{}, nil
	case kind.IsRotate():
		return Rotator{}, nil
	case kind == Scale:
		return Scaler{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrKind, kind)
}
