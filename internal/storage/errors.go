package storage

import "errors"

var ErrBlankText = errors.New("text is blank")
