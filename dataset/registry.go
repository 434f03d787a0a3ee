package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/cute/cairoplot/series"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"
)

func NewRegistry(cfg *Config, logger l.Wrapper) Registry {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = &Config{}
	}

	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval <= 0 && expiration > 0 {
		cleanupInterval = expiration * 2
		if cleanupInterval < time.Second {
			cleanupInterval = time.Second
		}
	}

	return &registryImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "registryImpl")),
		cache:  cache.New(expiration, cleanupInterval),
	}
}

type registryImpl struct {
	logger l.Wrapper
	cache  *cache.Cache
}

func (impl *registryImpl) Put(key string, s *series.Series) error {
	if key == "" || s == nil {
		return commerr.ErrInvalidArgument
	}

	impl.cache.Set(key, s.Copy(), cache.DefaultExpiration)

	return nil
}

// PutDataset stores every named series of ds under its name.
func (impl *registryImpl) PutDataset(ds *Dataset) error {
	if ds == nil {
		return commerr.ErrInvalidArgument
	}

	for idx, s := range ds.series {
		name, ok := s.Name()
		if !ok {
			impl.logger.WithFields(l.IntField("index", idx)).Debug("skip unnamed series")

			continue
		}

		impl.cache.Set(name, s.Copy(), cache.DefaultExpiration)
	}

	return nil
}

func (impl *registryImpl) Get(key string) (*series.Series, error) {
	i, ok := impl.cache.Get(key)
	if !ok {
		return nil, commerr.ErrNotFound
	}

	s, ok := i.(*series.Series)
	if !ok {
		impl.logger.WithFields(l.StringField("key", key)).Error("logic error: not a series")

		return nil, commerr.ErrNotFound
	}

	return s.Copy(), nil
}

func (impl *registryImpl) Remove(key string) {
	impl.cache.Delete(key)
}

func (impl *registryImpl) Keys() []string {
	items := impl.cache.Items()

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func (impl *registryImpl) Export() ([]byte, error) {
	m := make(map[string]*series.Series)

	for key, item := range impl.cache.Items() {
		if s, ok := item.Object.(*series.Series); ok {
			m[key] = s
		}
	}

	return yaml.Marshal(m)
}

// Import decodes every series before storing any of them.
func (impl *registryImpl) Import(d []byte) error {
	var m map[string]*series.Series

	if err := yaml.Unmarshal(d, &m); err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("import: decode failed")

		return err
	}

	for key, s := range m {
		if key == "" || s == nil {
			err := fmt.Errorf("%w: key %q", commerr.ErrInvalidArgument, key)

			impl.logger.WithFields(l.ErrorField(err)).Error("import: invalid entry")

			return err
		}
	}

	for key, s := range m {
		impl.cache.Set(key, s, cache.DefaultExpiration)
	}

	return nil
}
