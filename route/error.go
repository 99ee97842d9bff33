package route

import "errors"

var (
	ErrNotValid    = errors.New("not valid")
	ErrRewriteLoop = errors.New("too many rewrites")
)
