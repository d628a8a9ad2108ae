package domain

import "errors"

var (
	// ErrThreadUnavailable indicates the server answered with a FAILURE status
	// or without a thread.
	ErrThreadUnavailable = errors.New("thread unavailable")

	// ErrSubmissionRejected indicates the server refused a new thread or reply.
	ErrSubmissionRejected = errors.New("submission rejected")

	// ErrEmptyPost indicates a submission with neither comment nor image.
	ErrEmptyPost = errors.New("post needs a comment or an image")

	// ErrUnsupportedImage indicates an image with an extension the board refuses.
	ErrUnsupportedImage = errors.New("image must be png, jpeg, jpg, gif or webm")
)
