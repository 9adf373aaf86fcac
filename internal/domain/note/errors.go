package note

import "errors"

var (
	// ErrUnsupportedMessage indicates the message payload cannot become note content.
	ErrUnsupportedMessage = errors.New("can not create note from provided message")
	// ErrPhotoNotFound indicates a photo message without any resolution variant.
	ErrPhotoNotFound = errors.New("could not find photo")
)
