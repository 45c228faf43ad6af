package adapter

import "errors"

var (
	// ErrInvalidMailConfig is returned at construction time when the mail
	// relay configuration is incomplete or malformed.
	ErrInvalidMailConfig = errors.New("invalid mail relay configuration")

	// ErrMailDelivery is returned when the relay rejects a message or the
	// request to the relay fails outright.
	ErrMailDelivery = errors.New("mail delivery failed")
)
