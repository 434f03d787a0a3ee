package dataset

import (
	"time"

	"github.com/cute/cairoplot/series"
)

type Config struct {
	Expiration      time.Duration `yaml:"expiration" json:"expiration"`
	CleanupInterval time.Duration `yaml:"cleanupInterval" json:"cleanupInterval"`
}

// Registry keeps validated series under caller chosen keys. Series are copied
// on the way in and on the way out.
type Registry interface {
	Put(key string, s *series.Series) error
	PutDataset(ds *Dataset) error
	Get(key string) (*series.Series, error)
	Remove(key string)
	Keys() []string

	Export() ([]byte, error)
	Import(d []byte) error
}
