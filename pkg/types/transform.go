package types

import (
	"fmt"
	"math"
	"strconv"
)

// Translation is a position offset in blocks.
type Translation struct {
	X, Y, Z float32
}

// Payload renders the NBT transformation fragment for a translation.
func (t Translation) Payload() string {
	return fmt.Sprintf("translation: [%sf,%sf,%sf]", FormatFloat(t.X), FormatFloat(t.Y), FormatFloat(t.Z))
}

// Rotation is an axis-angle rotation. Axis is a unit direction, Angle is in
// degrees.
type Rotation struct {
	Axis  [3]float32
	Angle float32
}

// Payload renders the rotation as a left_rotation quaternion, w first. The
// half-angle trig runs in float64 so the float32 components round cleanly.
func (r Rotation) Payload() string {
	half := float64(r.Angle) * math.Pi / 360
	sin := float32(math.Sin(half))
	w := float32(math.Cos(half))
	x := r.Axis[0] * sin
	y := r.Axis[1] * sin
	z := r.Axis[2] * sin
	return fmt.Sprintf("left_rotation: [%sf,%sf,%sf,%sf]", FormatFloat(w), FormatFloat(x), FormatFloat(y), FormatFloat(z))
}

// Scale is a per-axis size multiplier.
type Scale struct {
	X, Y, Z float32
}

// Payload renders the NBT transformation fragment for a scale.
func (s Scale) Payload() string {
	return fmt.Sprintf("scale: [%sf,%sf,%sf]", FormatFloat(s.X), FormatFloat(s.Y), FormatFloat(s.Z))
}

// Transformation is the last-known transform state of one entity. The parser
// keeps one per entity name so '~' relative coordinates can resolve against
// the previous value of the same transform kind.
type Transformation struct {
	Translation Translation
	Rotation    Rotation
	Scale       Scale
}

// FormatFloat prints a float32 in its shortest exact form ("1", "0.5").
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
