package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNoExists   = errors.New("employee number already exists")
	ErrEmployeeIDRequired = errors.New("employee ID is required")
)
