package storage

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")

	ErrChoiceExists   = errors.New("choice already exists")
	ErrChoiceNotFound = errors.New("choice not found")

	ErrAdminExists   = errors.New("admin already exists")
	ErrAdminNotFound = errors.New("admin not found")
)
