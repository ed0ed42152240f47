package service

import "errors"

var (
	// ErrEmptyReply is returned when the reply body is empty or whitespace.
	ErrEmptyReply = errors.New("reply message must not be empty")

	// ErrInquiryNotFound is returned when the target inquiry does not exist.
	ErrInquiryNotFound = errors.New("inquiry not found")
)
