package leave

import "errors"

var (
	ErrTemplateNotFound   = errors.New("leave template not found")
	ErrTemplateNameExists = errors.New("leave template with this name already exists")
)
