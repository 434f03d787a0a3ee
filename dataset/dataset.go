package dataset

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cute/cairoplot/series"
	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

// Dataset is the ordered set of series a plot draws.
type Dataset struct {
	series []*series.Series
}

func New() *Dataset {
	return &Dataset{}
}

// Load builds a dataset from plot input: nil, a slice whose items are each
// one series worth of content (or a *series.Series), or a map from label to
// such content. Map input is ordered by label.
func Load(input any) (*Dataset, error) {
	ds := New()

	if input == nil {
		return ds, nil
	}

	rv := reflect.ValueOf(input)

	switch rv.Kind() {
	case reflect.Slice:
		for idx := 0; idx < rv.Len(); idx++ {
			s, err := toSeries(rv.Index(idx).Interface())
			if err != nil {
				return nil, fmt.Errorf("series %d: %w", idx, err)
			}

			if err = ds.Add(s); err != nil {
				return nil, fmt.Errorf("series %d: %w", idx, err)
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %T", ErrInvalidDatasetType, input)
		}

		labels := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			labels = append(labels, k.String())
		}

		sort.Strings(labels)

		for _, label := range labels {
			v := rv.MapIndex(reflect.ValueOf(label).Convert(rv.Type().Key())).Interface()

			s, err := toSeries(v)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", label, err)
			}

			if err = s.SetName(label); err != nil {
				return nil, fmt.Errorf("series %q: %w", label, err)
			}

			if err = ds.Add(s); err != nil {
				return nil, fmt.Errorf("series %q: %w", label, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidDatasetType, input)
	}

	return ds, nil
}

func toSeries(v any) (*series.Series, error) {
	switch s := v.(type) {
	case *series.Series:
		if s == nil {
			return nil, fmt.Errorf("%w: nil series", series.ErrInvalidSeriesType)
		}

		return s.Copy(), nil
	case series.Series:
		return s.Copy(), nil
	}

	return series.NewSeries(v)
}

// Add appends a copy of s. Named series must be unique within the dataset.
func (ds *Dataset) Add(s *series.Series) error {
	if s == nil {
		return fmt.Errorf("%w: nil series", series.ErrInvalidSeriesType)
	}

	if name, ok := s.Name(); ok {
		if _, exists := ds.Get(name); exists {
			return fmt.Errorf("%w: %q", commerr.ErrAlreadyExists, name)
		}
	}

	ds.series = append(ds.series, s.Copy())

	return nil
}

func (ds *Dataset) Get(name string) (*series.Series, bool) {
	for _, s := range ds.series {
		if n, ok := s.Name(); ok && n == name {
			return s.Copy(), true
		}
	}

	return nil, false
}

func (ds *Dataset) Len() int {
	return len(ds.series)
}

func (ds *Dataset) Series() []*series.Series {
	ss := make([]*series.Series, len(ds.series))
	for idx, s := range ds.series {
		ss[idx] = s.Copy()
	}

	return ss
}

func (ds *Dataset) Names() []string {
	names := make([]string, 0, len(ds.series))

	for _, s := range ds.series {
		if name, ok := s.Name(); ok {
			names = append(names, name)
		}
	}

	return names
}

func (ds *Dataset) Points() [][]series.Point {
	ps := make([][]series.Point, len(ds.series))
	for idx, s := range ds.series {
		ps[idx] = s.Points()
	}

	return ps
}

func (ds *Dataset) String() string {
	ss := make([]string, len(ds.series))
	for idx, s := range ds.series {
		ss[idx] = s.String()
	}

	return strings.Join(ss, "\n")
}

func (ds *Dataset) MarshalYAML() (interface{}, error) {
	ss := ds.series
	if ss == nil {
		ss = []*series.Series{}
	}

	return ss, nil
}

func (ds *Dataset) UnmarshalYAML(value *yaml.Node) error {
	var ss []*series.Series

	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: dataset must be a sequence", ErrInvalidDatasetType, value.Line)
	}

	if err := value.Decode(&ss); err != nil {
		return err
	}

	n := New()

	for idx, s := range ss {
		if err := n.Add(s); err != nil {
			return fmt.Errorf("series %d: %w", idx, err)
		}
	}

	*ds = *n

	return nil
}
