package auth

import (
	"time"

	"github.com/google/uuid"
)

const ResetTokenTTL = time.Hour

// NewResetToken returns an opaque single-use token for the password reset
// flow, paired with its expiry timestamp.
func NewResetToken() (string, time.Time) {
	return uuid.NewString(), time.Now().Add(ResetTokenTTL)
}
