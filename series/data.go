package series

// Data is a single named point. Content is always kept in canonical Point
// form; every mutation validates before it commits.
type Data struct {
	name  string
	named bool

	content Point
	has     bool
}

func NewData(content any, options ...Option) (*Data, error) {
	name, named, err := optionNew(options...).checkName()
	if err != nil {
		return nil, err
	}

	p, has, err := normalizeContent(content)
	if err != nil {
		return nil, err
	}

	return &Data{
		name:    name,
		named:   named,
		content: p,
		has:     has,
	}, nil
}

func (d *Data) Name() (string, bool) {
	return d.name, d.named
}

func (d *Data) SetName(name string) error {
	name, named, err := parseName(name)
	if err != nil {
		return err
	}

	d.name, d.named = name, named

	return nil
}

func (d *Data) ResetName() {
	d.name, d.named = "", false
}

func (d *Data) Content() (Point, bool) {
	return d.content, d.has
}

func (d *Data) HasContent() bool {
	return d.has
}

func (d *Data) SetContent(content any) error {
	p, has, err := normalizeContent(content)
	if err != nil {
		return err
	}

	d.content, d.has = p, has

	return nil
}

func (d *Data) Clear() {
	*d = Data{}
}

func (d *Data) Copy() *Data {
	n := *d

	return &n
}

func (d *Data) Equal(other *Data) bool {
	if d == nil || other == nil {
		return d == other
	}

	return d.named == other.named && d.name == other.name &&
		d.has == other.has && d.content.Equal(other.content)
}

// Len is the arity of the stored content: 3 once set, 0 without content.
func (d *Data) Len() int {
	if !d.has {
		return 0
	}

	return len(d.content)
}

func (d *Data) String() string {
	s := "<nil>"
	if d.has {
		s = d.content.String()
	}

	if !d.named {
		return s
	}

	return d.name + ": " + s
}
