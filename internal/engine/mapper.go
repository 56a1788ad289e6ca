package engine

import (
	"math"

	"github.com/figurate/figurate/backend-go/internal/figure"
)

// Matrix2D represents a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
type Matrix2D [6]float64

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix2D {
	return Matrix2D{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix2D {
	return Matrix2D{sx, 0, 0, sy, 0, 0}
}

// Multiply multiplies this matrix by another: result = m * other.
// This applies 'other' first, then 'm'.
func (m Matrix2D) Multiply(other Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix2D) TransformPoint(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Determinant returns the determinant of the matrix.
func (m Matrix2D) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of the matrix, or Identity if not invertible.
func (m Matrix2D) Invert() Matrix2D {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix2D{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}
}

// Rect is an axis-aligned box in device space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Mapper translates between math space (y up) and device space (y down).
// The only transform it applies is the vertical sign flip; pixel scaling is
// left to the drawing surface's aspect-preserving viewport fit. Padding is an
// absolute math-space margin added symmetrically on all four sides.
type Mapper struct {
	vp  figure.Viewport
	pad float64

	toDevice   Matrix2D
	fromDevice Matrix2D
}

// NewMapper builds a mapper for the given viewport and padding.
func NewMapper(vp figure.Viewport, pad float64) Mapper {
	flip := Matrix2D{1, 0, 0, -1, 0, 0}
	return Mapper{
		vp:         vp,
		pad:        pad,
		toDevice:   flip,
		fromDevice: flip.Invert(),
	}
}

// ToDevice maps a math-space point to device space.
func (m Mapper) ToDevice(x, y float64) (float64, float64) {
	return m.toDevice.TransformPoint(x, y)
}

// FromDevice maps a device-space point back to math space.
func (m Mapper) FromDevice(x, y float64) (float64, float64) {
	return m.fromDevice.TransformPoint(x, y)
}

// MapDistance maps a math-space distance (e.g. a circle radius) through the
// same linear scale as point coordinates.
func (m Mapper) MapDistance(d float64) float64 {
	return d * math.Hypot(m.toDevice[0], m.toDevice[1])
}

// ViewBox returns the device-space camera box: the padded viewport with the
// vertical axis flipped. Suitable as an SVG viewBox.
func (m Mapper) ViewBox() Rect {
	x0 := m.vp.XMin - m.pad
	x1 := m.vp.XMax + m.pad
	y0 := m.vp.YMin - m.pad
	y1 := m.vp.YMax + m.pad

	// The top of the device box is the flipped top of the math box.
	return Rect{
		X:      x0,
		Y:      -y1,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

// FitTransform returns the matrix mapping the given device-space box into a
// w×h pixel target, uniformly scaled ("contain") and centered.
func FitTransform(box Rect, w, h float64) Matrix2D {
	if box.Width <= 0 || box.Height <= 0 {
		return Identity()
	}

	s := math.Min(w/box.Width, h/box.Height)
	ox := (w - box.Width*s) / 2
	oy := (h - box.Height*s) / 2

	return Translate(ox, oy).Multiply(Scale(s, s)).Multiply(Translate(-box.X, -box.Y))
}
