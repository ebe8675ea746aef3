package domain

import "errors"

var (
	ErrProjectExists   = errors.New("project already exists")
	ErrProjectNotFound = errors.New("project not found")
	ErrStaleSnapshot   = errors.New("snapshot belongs to a superseded context")
	ErrUnsortedInput   = errors.New("input is not sorted by unique name")
	ErrUnsupportedSCM  = errors.New("unsupported scm type")
)
