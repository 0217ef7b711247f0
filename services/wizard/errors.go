package wizard

import "errors"

var (
	// ErrInvalidRequest marks a missing or unusable request parameter.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnsupportedMediaType marks an upload outside the mime allow-list.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
