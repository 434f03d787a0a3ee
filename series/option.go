package series

type Options struct {
	name  string
	named bool
}

func (opt *Options) checkName() (name string, named bool, err error) {
	if !opt.named {
		return
	}

	return parseName(opt.name)
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithName(name string) Option {
	return func(o *Options) {
		o.name = name
		o.named = true
	}
}
