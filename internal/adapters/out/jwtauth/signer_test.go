package jwtauth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/jwtauth"
)

func Test_Signer_RoundTrip(t *testing.T) {
	signer := jwtauth.NewSigner("top-secret", time.Hour)

	token, err := signer.Sign(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func Test_Signer_RejectsExpiredToken(t *testing.T) {
	signer := jwtauth.NewSigner("top-secret", -time.Minute)

	token, err := signer.Sign(42)
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
}

func Test_Signer_RejectsForeignSecret(t *testing.T) {
	token, err := jwtauth.NewSigner("their-secret", time.Hour).Sign(42)
	require.NoError(t, err)

	_, err = jwtauth.NewSigner("our-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
}

func Test_Signer_RejectsGarbage(t *testing.T) {
	signer := jwtauth.NewSigner("top-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := signer.Verify(token)
		assert.ErrorIs(t, err, jwtauth.ErrInvalidToken, "token %q", token)
	}
}
