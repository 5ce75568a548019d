package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/queries"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
)

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var req createAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateAccountCommand(req.Email, req.Password, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/v1/accounts/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, loginResponse{Token: token})
}

type verifyEmailRequest struct {
	Code string `json:"code"`
}

// VerifyEmail handles POST /api/v1/accounts/verify-email.
func (s *Server) VerifyEmail(ctx echo.Context) error {
	var req verifyEmailRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewVerifyEmailCommand(req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyEmailHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

type editProfileRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// EditProfile handles PATCH /api/v1/accounts/me.
func (s *Server) EditProfile(ctx echo.Context) error {
	var req editProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEditProfileCommand(actorFrom(ctx), req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.editProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

type profileResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

// GetMyProfile handles GET /api/v1/accounts/me.
func (s *Server) GetMyProfile(ctx echo.Context) error {
	return s.profileByID(ctx, actorFrom(ctx).ID())
}

// GetUserProfile handles GET /api/v1/users/:id.
func (s *Server) GetUserProfile(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, "invalid user id")
	}

	return s.profileByID(ctx, userID)
}

func (s *Server) profileByID(ctx echo.Context, userID int64) error {
	query, err := queries.NewGetUserProfileQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, profileResponse{
		ID:       profile.ID,
		Email:    profile.Email,
		Role:     profile.Role,
		Verified: profile.Verified,
	})
}
