package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/jwt-keychain/models"
)

// Mailer delivers transactional authentication mail through an external
// relay. Implementations must treat every relay failure as opaque: callers
// decide whether delivery problems surface to the end user.
type Mailer interface {
	// SendPasswordReset delivers a password-reset message carrying a link
	// with the signed reset token to the given recipient.
	SendPasswordReset(ctx context.Context, to models.EmailAddress, resetToken string) error
}
