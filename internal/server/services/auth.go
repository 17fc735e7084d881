// Package services contains the server-side business logic. This file
// implements AuthService, which orchestrates signup, login, logout, and
// identity lookup by composing the validator, the password hasher, the user
// store, and the token service.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/minjongk/teamauth/internal/common"
	"github.com/minjongk/teamauth/internal/logging"
	"github.com/minjongk/teamauth/internal/passhash"
	"github.com/minjongk/teamauth/internal/server/auth"
	"github.com/minjongk/teamauth/internal/server/models"
	"github.com/minjongk/teamauth/internal/server/repositories/users"
	"github.com/minjongk/teamauth/internal/validation"
)

// Outcome codes produced by AuthService, in addition to the validation
// codes carried through verbatim.
const (
	CodeSignupSuccess = "SIGNUP_SUCCESS"
	CodeUsernameTaken = "USERNAME_TAKEN"
	CodeSignupFailed  = "SIGNUP_FAILED"
	CodeLoginSuccess  = "LOGIN_SUCCESS"
	CodeAuthFailed    = "AUTH_FAILED"
	CodeLogoutSuccess = "LOGOUT_SUCCESS"
	CodeMeSuccess     = "ME_SUCCESS"
)

// Outcome is the structured result every auth operation returns to its
// caller. Failures are expressed as values, never panics.
type Outcome struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// UserData is the public projection of a user record. The password hash is
// never part of any outcome.
type UserData struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginData carries a freshly minted bearer token.
type LoginData struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// LogoutData tells the client what to do with its stored token.
type LogoutData struct {
	ClientAction string `json:"clientAction"`
}

// AuthService provides the credential-issuance operations. All
// dependencies are injected at construction so tests can substitute
// fixtures; there are no package-level singletons.
type AuthService struct {
	repo   users.Repository
	hasher *passhash.Hasher
	tokens *auth.TokenService
	logger logging.Logger
}

func NewAuthService(repo users.Repository, hasher *passhash.Hasher, tokens *auth.TokenService, logger logging.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

// SignUp validates the input, hashes the password, and stores the new
// user. The pre-insert existence check is a fast path only; the UNIQUE
// constraint is the correctness guarantee, and a duplicate surfacing at
// insert time is reported as the generic SIGNUP_FAILED so the race is not
// leaked.
func (s *AuthService) SignUp(ctx context.Context, username, password, displayName string) Outcome {
	if v := validation.SignupInput(username, password, displayName); !v.OK {
		return Outcome{Code: v.Code, Message: v.Message}
	}

	_, err := s.repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return Outcome{Code: CodeUsernameTaken, Message: "username is already in use"}
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "signup lookup failed", "error", err)
		return Outcome{Code: CodeSignupFailed, Message: "signup failed"}
	}

	user := &models.User{
		Username:     username,
		PasswordHash: s.hasher.Hash(password),
		DisplayName:  displayName,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, common.ErrorDuplicateUsername) {
			s.logger.Error(ctx, "signup insert failed", "error", err)
		}
		return Outcome{Code: CodeSignupFailed, Message: "signup failed"}
	}

	s.logger.Info(ctx, "user registered", "username", user.Username)
	return Outcome{
		OK:      true,
		Code:    CodeSignupSuccess,
		Message: "signup successful",
		Data:    UserData{Username: user.Username, DisplayName: user.DisplayName, CreatedAt: user.CreatedAt},
	}
}

// LogIn checks the credentials and mints an access token. Unknown username
// and wrong password produce the identical outcome so usernames cannot be
// enumerated. The returned error is non-nil only for storage or signing
// faults.
func (s *AuthService) LogIn(ctx context.Context, username, password string) (Outcome, error) {
	if v := validation.LoginInput(username, password); !v.OK {
		return Outcome{Code: v.Code, Message: v.Message}, nil
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.authFailed(), nil
		}
		s.logger.Error(ctx, "login lookup failed", "error", err)
		return Outcome{}, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return s.authFailed(), nil
	}

	token, err := s.tokens.CreateAccessToken(user.Username)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return Outcome{}, common.ErrorInternal
	}

	s.logger.Info(ctx, "user logged in", "username", user.Username)
	return Outcome{
		OK:      true,
		Code:    CodeLoginSuccess,
		Message: "login successful",
		Data:    LoginData{AccessToken: token, TokenType: "bearer"},
	}, nil
}

// LogOut is a stateless acknowledgment: tokens are self-contained and the
// server keeps no session table to invalidate, so the client deleting its
// token is the whole operation.
func (s *AuthService) LogOut(ctx context.Context) Outcome {
	return Outcome{
		OK:      true,
		Code:    CodeLogoutSuccess,
		Message: "logged out; delete the token on the client",
		Data:    LogoutData{ClientAction: "delete_token"},
	}
}

// Me resolves a bearer token to the current user's public fields. The
// record is re-fetched by the token's subject rather than trusted from the
// payload, so a user removed after issuance stops authenticating. Invalid,
// expired, and subject-less tokens all yield common.ErrorUnauthorized.
func (s *AuthService) Me(ctx context.Context, token string) (Outcome, error) {
	subject, err := s.tokens.DecodeAccessToken(token)
	if err != nil {
		return Outcome{}, common.ErrorUnauthorized
	}

	user, err := s.repo.GetUserByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return Outcome{}, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "identity lookup failed", "error", err)
		return Outcome{}, common.ErrorInternal
	}

	return Outcome{
		OK:      true,
		Code:    CodeMeSuccess,
		Message: "OK",
		Data:    UserData{Username: user.Username, DisplayName: user.DisplayName, CreatedAt: user.CreatedAt},
	}, nil
}

func (s *AuthService) authFailed() Outcome {
	return Outcome{Code: CodeAuthFailed, Message: "incorrect username or password"}
}
