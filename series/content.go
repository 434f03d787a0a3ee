package series

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/spf13/cast"
)

// Point is the canonical (x, y, z) form every content value is reduced to.
type Point [3]float64

func Scalar(v float64) Point {
	return Point{v, 0, 0}
}

func Pair(x, y float64) Point {
	return Point{x, y, 0}
}

func Triple(x, y, z float64) Point {
	return Point{x, y, z}
}

func (p Point) X() float64 {
	return p[0]
}

func (p Point) Y() float64 {
	return p[1]
}

func (p Point) Z() float64 {
	return p[2]
}

func (p Point) Equal(o Point) bool {
	for idx := range p {
		if !axisEqual(p[idx], o[idx]) {
			return false
		}
	}

	return true
}

// axisEqual treats NaN as equal to NaN so a point always equals its copy.
func axisEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (p Point) String() string {
	return "(" + formatAxis(p[0]) + ", " + formatAxis(p[1]) + ", " + formatAxis(p[2]) + ")"
}

func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type shape int

const (
	shapeOther shape = iota
	shapeScalar
	shapeTuple
	shapeData
)

var float64Type = reflect.TypeOf(float64(0))

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// isByteString reports []byte, which holds text rather than coordinates.
func isByteString(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
}

func isTuple(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return !isByteString(rv)
	case reflect.Array:
		return true
	default:
		return false
	}
}

// shapeOf classifies a raw series item before any normalization happens.
func shapeOf(item any) shape {
	switch item.(type) {
	case nil:
		return shapeOther
	case Data, *Data:
		return shapeData
	}

	rv := reflect.ValueOf(item)

	switch {
	case isNumericKind(rv.Kind()):
		return shapeScalar
	case isTuple(rv):
		return shapeTuple
	default:
		return shapeOther
	}
}

func toFloat64(rv reflect.Value) float64 {
	if f, err := cast.ToFloat64E(rv.Interface()); err == nil {
		return f
	}

	// named numeric types are not known to cast
	return rv.Convert(float64Type).Float()
}

// normalizeContent reduces raw content to its canonical Point. has is false
// for nil content.
func normalizeContent(content any) (p Point, has bool, err error) {
	if content == nil {
		return
	}

	rv := reflect.ValueOf(content)

	if isNumericKind(rv.Kind()) {
		p = Scalar(toFloat64(rv))
		has = true

		return
	}

	if !isTuple(rv) {
		err = fmt.Errorf("%w: %T", ErrInvalidContentType, content)

		return
	}

	n := rv.Len()
	if n != 2 && n != 3 {
		err = fmt.Errorf("%w: %d items", ErrInvalidContentArity, n)

		return
	}

	for idx := 0; idx < n; idx++ {
		e := rv.Index(idx)
		if e.Kind() == reflect.Interface {
			e = e.Elem()
		}

		if !e.IsValid() || !isNumericKind(e.Kind()) {
			err = fmt.Errorf("%w: item %d", ErrInvalidContentElementType, idx)

			return
		}

		p[idx] = toFloat64(e)
	}

	has = true

	return
}

func parseName(v any) (name string, named bool, err error) {
	if v == nil {
		return
	}

	s, ok := v.(string)
	if !ok || s == "" {
		err = fmt.Errorf("%w: %#v", ErrInvalidNameType, v)

		return
	}

	return s, true, nil
}
