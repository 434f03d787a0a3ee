package series

import (
	"fmt"
	"reflect"
	"strings"
)

// Series is an ordered, optionally named run of points. It owns copies of
// everything stored in it.
type Series struct {
	name  string
	named bool

	content []*Data
}

func NewSeries(content any, options ...Option) (*Series, error) {
	name, named, err := optionNew(options...).checkName()
	if err != nil {
		return nil, err
	}

	ds, err := buildContent(content)
	if err != nil {
		return nil, err
	}

	return &Series{
		name:    name,
		named:   named,
		content: ds,
	}, nil
}

// buildContent accepts nil or a slice. Arrays are tuples, not sequences.
func buildContent(content any) ([]*Data, error) {
	if content == nil {
		return []*Data{}, nil
	}

	rv := reflect.ValueOf(content)
	if rv.Kind() != reflect.Slice || isByteString(rv) {
		return nil, fmt.Errorf("%w: %T", ErrInvalidSeriesType, content)
	}

	items := make([]any, rv.Len())
	for idx := range items {
		items[idx] = rv.Index(idx).Interface()
	}

	return buildItems(items)
}

func buildItems(items []any) ([]*Data, error) {
	var scalars, tuples int

	for _, item := range items {
		switch shapeOf(item) {
		case shapeScalar:
			scalars++
		case shapeTuple:
			tuples++
		}
	}

	if scalars > 0 && tuples > 0 {
		return nil, fmt.Errorf("%w: %d scalars, %d tuples", ErrInvalidSeriesMixedShape, scalars, tuples)
	}

	ds := make([]*Data, 0, len(items))

	for idx, item := range items {
		switch v := item.(type) {
		case *Data:
			if v == nil {
				return nil, fmt.Errorf("item %d: %w: nil data", idx, ErrInvalidContentType)
			}

			ds = append(ds, v.Copy())
		case Data:
			ds = append(ds, v.Copy())
		default:
			d, err := NewData(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", idx, err)
			}

			ds = append(ds, d)
		}
	}

	return ds, nil
}

func (s *Series) Name() (string, bool) {
	return s.name, s.named
}

func (s *Series) SetName(name string) error {
	name, named, err := parseName(name)
	if err != nil {
		return err
	}

	s.name, s.named = name, named

	return nil
}

func (s *Series) ResetName() {
	s.name, s.named = "", false
}

func (s *Series) SetContent(content any) error {
	ds, err := buildContent(content)
	if err != nil {
		return err
	}

	s.content = ds

	return nil
}

// Content returns copies of the stored points.
func (s *Series) Content() []*Data {
	ds := make([]*Data, len(s.content))
	for idx, d := range s.content {
		ds[idx] = d.Copy()
	}

	return ds
}

func (s *Series) At(idx int) (*Data, bool) {
	if idx < 0 || idx >= len(s.content) {
		return nil, false
	}

	return s.content[idx].Copy(), true
}

// Points returns the canonical triples in order. Points without content are
// skipped.
func (s *Series) Points() []Point {
	ps := make([]Point, 0, len(s.content))

	for _, d := range s.content {
		if p, ok := d.Content(); ok {
			ps = append(ps, p)
		}
	}

	return ps
}

func (s *Series) Clear() {
	s.name, s.named = "", false
	s.content = []*Data{}
}

func (s *Series) Copy() *Series {
	return &Series{
		name:    s.name,
		named:   s.named,
		content: s.Content(),
	}
}

func (s *Series) Equal(other *Series) bool {
	if s == nil || other == nil {
		return s == other
	}

	if s.named != other.named || s.name != other.name || len(s.content) != len(other.content) {
		return false
	}

	for idx, d := range s.content {
		if !d.Equal(other.content[idx]) {
			return false
		}
	}

	return true
}

func (s *Series) Len() int {
	return len(s.content)
}

func (s *Series) String() string {
	var ss strings.Builder

	if s.named {
		ss.WriteString(s.name)
		ss.WriteString(" ")
	}

	ss.WriteString("[")

	for idx, d := range s.content {
		if idx > 0 {
			ss.WriteString(", ")
		}

		ss.WriteString(d.String())
	}

	ss.WriteString("]")

	return ss.String()
}
