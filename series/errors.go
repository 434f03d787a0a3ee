package series

import "errors"

var (
	ErrInvalidContentType        = errors.New("invalid content type")
	ErrInvalidContentArity       = errors.New("invalid content arity")
	ErrInvalidContentElementType = errors.New("invalid content element type")
	ErrInvalidNameType           = errors.New("invalid name type")
	ErrInvalidSeriesType         = errors.New("invalid series type")
	ErrInvalidSeriesMixedShape   = errors.New("invalid series mixed shape")
)
