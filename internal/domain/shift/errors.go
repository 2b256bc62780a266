package shift

import "errors"

var (
	ErrTemplateNotFound   = errors.New("shift template not found")
	ErrTemplateNameExists = errors.New("shift template with this name already exists")
)
