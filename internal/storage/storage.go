package storage

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrUserExists = errors.New("user already exists")
	// ErrForeignKey means the referenced parent row does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
