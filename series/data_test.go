package series

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius float64

func TestDataNormalize(t *testing.T) {
	cases := []struct {
		name    string
		content any
		want    Point
	}{
		{"int", 13, Point{13, 0, 0}},
		{"float", 1.5, Point{1.5, 0, 0}},
		{"uint8", uint8(7), Point{7, 0, 0}},
		{"named type", celsius(-4), Point{-4, 0, 0}},
		{"pair array", [2]int{1, 2}, Point{1, 2, 0}},
		{"pair slice", []float64{1, 2}, Point{1, 2, 0}},
		{"byte array", [2]byte{1, 2}, Point{1, 2, 0}},
		{"triple", []any{1, 2.5, int64(3)}, Point{1, 2.5, 3}},
		{"point", Triple(4, 5, 6), Point{4, 5, 6}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := NewData(c.content)
			assert.Nil(t, err)

			p, ok := d.Content()
			assert.True(t, ok)
			assert.EqualValues(t, c.want, p)
			assert.EqualValues(t, 3, d.Len())
		})
	}
}

func TestDataNone(t *testing.T) {
	d, err := NewData(nil)
	assert.Nil(t, err)
	assert.False(t, d.HasContent())
	assert.EqualValues(t, 0, d.Len())

	zero, err := NewData(0)
	assert.Nil(t, err)
	assert.True(t, zero.HasContent())
	assert.False(t, d.Equal(zero))
}

func TestDataTripleNotAliased(t *testing.T) {
	in := []float64{1, 2, 3}

	d, err := NewData(in)
	assert.Nil(t, err)

	in[0] = 100

	p, _ := d.Content()
	assert.EqualValues(t, Point{1, 2, 3}, p)
}

func TestDataInvalidContent(t *testing.T) {
	cases := []struct {
		name    string
		content any
		err     error
	}{
		{"string", "x", ErrInvalidContentType},
		{"bool", true, ErrInvalidContentType},
		{"map", map[string]int{"x": 1}, ErrInvalidContentType},
		{"data", Data{}, ErrInvalidContentType},
		{"arity 0", []int{}, ErrInvalidContentArity},
		{"arity 1", []int{1}, ErrInvalidContentArity},
		{"arity 4", [4]int{1, 2, 3, 4}, ErrInvalidContentArity},
		{"arity 5", []float64{1, 2, 3, 4, 5}, ErrInvalidContentArity},
		{"string element", []any{1, "x"}, ErrInvalidContentElementType},
		{"nil element", []any{1, 2, nil}, ErrInvalidContentElementType},
		{"nested tuple", []any{1, []int{2, 3}}, ErrInvalidContentElementType},
		{"string slice", []string{"a", "b"}, ErrInvalidContentElementType},
		{"bytes", []byte("ab"), ErrInvalidContentType},
		{"bytes triple", []byte("abc"), ErrInvalidContentType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := NewData(c.content)
			assert.Nil(t, d)
			assert.True(t, errors.Is(err, c.err), err)
		})
	}
}

func TestDataName(t *testing.T) {
	d, err := NewData(1, WithName("point a"))
	assert.Nil(t, err)

	name, ok := d.Name()
	assert.True(t, ok)
	assert.EqualValues(t, "point a", name)
	assert.EqualValues(t, "point a: (1, 0, 0)", d.String())

	_, err = NewData(1, WithName(""))
	assert.True(t, errors.Is(err, ErrInvalidNameType))

	err = d.SetName("")
	assert.True(t, errors.Is(err, ErrInvalidNameType))

	name, ok = d.Name()
	assert.True(t, ok)
	assert.EqualValues(t, "point a", name)

	d.ResetName()

	_, ok = d.Name()
	assert.False(t, ok)
	assert.EqualValues(t, "(1, 0, 0)", d.String())
}

func TestDataString(t *testing.T) {
	d, err := NewData([]float64{1.5, 2})
	assert.Nil(t, err)
	assert.EqualValues(t, "(1.5, 2, 0)", d.String())

	d, err = NewData(nil, WithName("empty"))
	assert.Nil(t, err)
	assert.EqualValues(t, "empty: <nil>", d.String())
}

// A rejected assignment keeps the previous content instead of a placeholder.
func TestDataSetContentAtomic(t *testing.T) {
	d, err := NewData([]int{1, 2}, WithName("b"))
	assert.Nil(t, err)

	err = d.SetContent("bad")
	assert.True(t, errors.Is(err, ErrInvalidContentType))

	err = d.SetContent([]int{1, 2, 3, 4})
	assert.True(t, errors.Is(err, ErrInvalidContentArity))

	p, ok := d.Content()
	assert.True(t, ok)
	assert.EqualValues(t, Point{1, 2, 0}, p)

	assert.Nil(t, d.SetContent(9))

	p, _ = d.Content()
	assert.EqualValues(t, Point{9, 0, 0}, p)

	assert.Nil(t, d.SetContent(nil))
	assert.False(t, d.HasContent())
}

func TestDataCopy(t *testing.T) {
	a, err := NewData([]int{1, 2, 3}, WithName("a"))
	assert.Nil(t, err)

	b := a.Copy()
	assert.True(t, a.Equal(b))

	assert.Nil(t, b.SetContent(5))
	assert.False(t, a.Equal(b))

	p, _ := a.Content()
	assert.EqualValues(t, Point{1, 2, 3}, p)

	unnamed, err := NewData(nil)
	assert.Nil(t, err)
	assert.True(t, unnamed.Copy().Equal(unnamed))

	nan, err := NewData([]float64{math.NaN(), 1}, WithName("nan"))
	assert.Nil(t, err)
	assert.True(t, nan.Copy().Equal(nan))
	assert.True(t, nan.Equal(nan))

	other, err := NewData([]float64{2, 1}, WithName("nan"))
	assert.Nil(t, err)
	assert.False(t, nan.Equal(other))
}

// Integers beyond 2^53 round to the nearest float64 axis.
func TestDataLargeInteger(t *testing.T) {
	exact, err := NewData(int64(1 << 40))
	assert.Nil(t, err)
	assert.EqualValues(t, "(1099511627776, 0, 0)", exact.String())

	rounded, err := NewData(int64(1<<53 + 1))
	assert.Nil(t, err)
	assert.EqualValues(t, "(9007199254740992, 0, 0)", rounded.String())
}

func TestDataEqual(t *testing.T) {
	a, _ := NewData(1, WithName("x"))
	b, _ := NewData([]int{1, 0, 0}, WithName("x"))
	c, _ := NewData(1, WithName("y"))
	e, _ := NewData(1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(e))
	assert.False(t, a.Equal(nil))
}

func TestDataClear(t *testing.T) {
	d, err := NewData([]int{1, 2, 3}, WithName("x"))
	assert.Nil(t, err)

	d.Clear()

	_, named := d.Name()
	assert.False(t, named)
	assert.False(t, d.HasContent())
	assert.True(t, d.Equal(&Data{}))

	d.Clear()
	assert.EqualValues(t, "<nil>", d.String())
}
