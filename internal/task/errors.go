package task

import "github.com/pkg/errors"

var (
	ErrNotFound         = errors.New("task not found")
	ErrDuplicateKey     = errors.New("task already exists")
	ErrStoreUnavailable = errors.New("task store unavailable")
)
