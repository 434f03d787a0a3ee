package series

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type dataYAML struct {
	Name    string `yaml:"name,omitempty"`
	Content any    `yaml:"content"`
}

func (d *Data) MarshalYAML() (interface{}, error) {
	m := dataYAML{
		Name: d.name,
	}

	if d.has {
		m.Content = d.content[:]
	}

	return m, nil
}

func (d *Data) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name    any `yaml:"name"`
		Content any `yaml:"content"`
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: data must be a mapping", ErrInvalidContentType, value.Line)
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	name, named, err := parseName(raw.Name)
	if err != nil {
		return err
	}

	p, has, err := normalizeContent(raw.Content)
	if err != nil {
		return err
	}

	*d = Data{
		name:    name,
		named:   named,
		content: p,
		has:     has,
	}

	return nil
}

type seriesYAML struct {
	Name    string  `yaml:"name,omitempty"`
	Content []*Data `yaml:"content"`
}

func (s *Series) MarshalYAML() (interface{}, error) {
	content := s.content
	if content == nil {
		content = []*Data{}
	}

	return seriesYAML{
		Name:    s.name,
		Content: content,
	}, nil
}

// UnmarshalYAML accepts the same items NewSeries does: mappings decode as
// Data, anything else is taken as a raw scalar or tuple.
func (s *Series) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name    any       `yaml:"name"`
		Content yaml.Node `yaml:"content"`
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: series must be a mapping", ErrInvalidSeriesType, value.Line)
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	name, named, err := parseName(raw.Name)
	if err != nil {
		return err
	}

	var items []any

	switch {
	case raw.Content.Kind == 0, raw.Content.Tag == "!!null":
	case raw.Content.Kind == yaml.SequenceNode:
		items = make([]any, 0, len(raw.Content.Content))

		for _, node := range raw.Content.Content {
			if node.Kind == yaml.MappingNode {
				d := &Data{}
				if err = d.UnmarshalYAML(node); err != nil {
					return err
				}

				items = append(items, d)

				continue
			}

			var item any
			if err = node.Decode(&item); err != nil {
				return err
			}

			items = append(items, item)
		}
	default:
		return fmt.Errorf("%w: line %d: content must be a sequence", ErrInvalidSeriesType, raw.Content.Line)
	}

	ds, err := buildItems(items)
	if err != nil {
		return err
	}

	*s = Series{
		name:    name,
		named:   named,
		content: ds,
	}

	return nil
}
