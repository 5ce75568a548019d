package commands_test

import (
	"testing"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginCommand("customer@ongs.dev", "s3cret")
	require.NoError(t, err)

	loggedUser, err := user.RestoreUser(1, "customer@ongs.dev", "hashed", user.Customer, true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "customer@ongs.dev").Return(loggedUser, nil).Once()

	uow := new(MockUserUoW)
	uow.On("UserRepository").Return(userRepo)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Compare", "hashed", "s3cret").Return(true).Once()

	signer := new(MockTokenSigner)
	signer.On("Sign", int64(1)).Return("a.b.c", nil).Once()

	h := commands.NewLoginCommandHandler(factory, hasher, signer)
	token, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", token)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginCommand("customer@ongs.dev", "nope")
	require.NoError(t, err)

	loggedUser, err := user.RestoreUser(1, "customer@ongs.dev", "hashed", user.Customer, true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "customer@ongs.dev").Return(loggedUser, nil).Once()

	uow := new(MockUserUoW)
	uow.On("UserRepository").Return(userRepo)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Compare", "hashed", "nope").Return(false).Once()

	signer := new(MockTokenSigner)
	h := commands.NewLoginCommandHandler(factory, hasher, signer)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.ErrorIs(t, err, commands.ErrWrongPassword)
	signer.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestLoginCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginCommand("ghost@ongs.dev", "s3cret")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ghost@ongs.dev").
		Return(nil, errs.NewObjectNotFoundError("email", "ghost@ongs.dev")).Once()

	uow := new(MockUserUoW)
	uow.On("UserRepository").Return(userRepo)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory, new(MockPasswordHasher), new(MockTokenSigner))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
