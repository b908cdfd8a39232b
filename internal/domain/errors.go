package domain

import "errors"

var (
	// ErrEmptyText indicates the input was empty after normalization.
	ErrEmptyText = errors.New("text is empty")

	// ErrTextTooLong indicates the input exceeded MaxTextLength.
	ErrTextTooLong = errors.New("text exceeds maximum length")

	// ErrEnhanceFailed indicates the generative collaborator is configured
	// but its call failed or returned unparsable content.
	ErrEnhanceFailed = errors.New("ai enhancement failed")
)
