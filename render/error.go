package render

import "errors"

var (
	ErrBadFolderConf = errors.New("bad folder.conf")
	ErrNoFiles       = errors.New("no files provided")
)
