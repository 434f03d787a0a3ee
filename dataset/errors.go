package dataset

import "errors"

var (
	ErrInvalidDatasetType = errors.New("invalid dataset type")
)
