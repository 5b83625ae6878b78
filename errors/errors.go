package errors

import "fmt"

var (
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrKeyMismatch     = fmt.Errorf("key does not match message id")
	ErrCorruptRecord   = fmt.Errorf("corrupt message record")
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrMissingID       = fmt.Errorf("a message id is required")
)
