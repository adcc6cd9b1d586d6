package documents

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrStorageWrite    = errors.New("storage write failed")
	ErrStorageRead     = errors.New("storage read failed")
	ErrMetadataWrite   = errors.New("metadata write failed")
	ErrMetadataDelete  = errors.New("metadata delete failed")
)
