package ports

import "context"

// Mailer is the external email delivery capability. Sending is best-effort:
// callers log failures and never let them fail the triggering operation.
type Mailer interface {
	// SendVerificationEmail sends the account verification code to the address.
	SendVerificationEmail(ctx context.Context, to, code string) error
}

// TokenSigner is the opaque token capability used for authentication.
// The token payload carries only the user identifier.
type TokenSigner interface {
	// Sign issues a token for the user.
	Sign(userID int64) (string, error)

	// Verify resolves a token back to the user identifier it was issued for.
	// Returns an error for malformed, forged, or expired tokens.
	Verify(token string) (int64, error)
}

// PasswordHasher is the opaque credential hashing capability.
type PasswordHasher interface {
	// Hash derives a storable hash from a plain credential.
	Hash(plain string) (string, error)

	// Compare reports whether the plain credential matches the hash.
	Compare(hashed, plain string) bool
}
