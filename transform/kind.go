package transform

import (
	"errors"
	"fmt"
)

// ErrKind is returned when a strategy is handed a kind outside its
// supported set, such as a rotation kind passed to Scale.
var ErrKind = errors.New("unsupported transform kind")

// Axis selects one of the three world coordinate axes. Its value doubles
// as the index into a Point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Kind identifies one transform request: which operation and, for
// translation and rotation, which axis. The value accompanying a Kind is a
// step distance for translations, an angle in degrees for rotations, and a
// factor for Scale.
type Kind int

const (
	TranslateX Kind = iota
	TranslateY
	TranslateZ
	RotateX
	RotateY
	RotateZ
	Scale
)

var kindNames = map[Kind]string{
	TranslateX: "move-x",
	TranslateY: "move-y",
	TranslateZ: "move-z",
	RotateX:    "rotate-x",
	RotateY:    "rotate-y",
	RotateZ:    "rotate-z",
	Scale:      "scale",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Axis reports the axis a translation or rotation kind acts on. The second
// return is false for Scale and for out-of-range kinds, which have no axis.
func (k Kind) Axis() (Axis, bool) {
	switch k {
	case TranslateX, RotateX:
		return AxisX, true
	case TranslateY, RotateY:
		return AxisY, true
	case TranslateZ, RotateZ:
		return AxisZ, true
	}
	return 0, false
}

// IsTranslate reports whether k is one of the three translation kinds.
func (k Kind) IsTranslate() bool {
	return k == TranslateX || k == TranslateY || k == TranslateZ
}

// IsRotate reports whether k is one of the three rotation kinds.
func (k Kind) IsRotate() bool {
	return k == RotateX || k == RotateY || k == RotateZ
}

// ParseKind maps a spelled-out kind name ("rotate-z", "move-x", "scale")
// back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transform kind %q", s)
}
