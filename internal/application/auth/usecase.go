// Package auth authenticates users and turns session tokens back into identities.
package auth

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/access"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
	"github.com/jhoicas/rationshop-api/pkg/jwt"
)

// ForgotPasswordMessage is the only answer of ForgotPassword, whatever the email.
const ForgotPasswordMessage = "If the email is registered, the administrator will contact you to reset the password."

// Landing pages per role.
const (
	AdminHome  = "/api/admin/dashboard"
	BranchHome = "/api/branch/dashboard"
)

// JWTConfig configures session token generation.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase covers login and session parsing.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Authenticate checks username and password. An unknown user and a wrong password give the
// same domain.ErrInvalidCredentials, and both pay for one bcrypt comparison.
func (uc *UseCase) Authenticate(ctx context.Context, username, password string) (access.Identity, *entity.User, error) {
	username = entity.NormalizeUsername(username)
	var user *entity.User
	if username != "" {
		var err error
		if user, err = uc.users.GetByUsername(ctx, username); err != nil {
			return nil, nil, err
		}
	}

	hash := uc.dummy()
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	mismatch := bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil
	if user == nil || mismatch || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	id, err := access.FromUser(user)
	if err != nil {
		// A manager whose shop link is missing cannot hold a session.
		return nil, nil, domain.ErrInvalidCredentials
	}
	return id, user, nil
}

// Login authenticates and issues the session token.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	id, user, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		ShopID:   user.ShopID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		User:     dto.NewUserResponse(user),
		Redirect: HomeOf(id),
	}, nil
}

// ParseSession verifies a session token and rebuilds the caller identity.
// Any problem with the token is domain.ErrUnauthorized.
func (uc *UseCase) ParseSession(token string) (access.Identity, error) {
	s, err := jwt.Parse(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return access.FromClaims(s.UserID, s.Role, s.ShopID)
}

// ForgotPassword never reveals whether the email exists.
func (uc *UseCase) ForgotPassword(_ context.Context, in dto.ForgotPasswordRequest) (string, error) {
	if entity.NormalizeEmail(in.Email) == "" {
		return "", domain.ErrMissingField
	}
	return ForgotPasswordMessage, nil
}

// HomeOf returns the landing page of id.
func HomeOf(id access.Identity) string {
	switch id.(type) {
	case access.Admin:
		return AdminHome
	case access.Manager:
		return BranchHome
	default:
		return "/login"
	}
}

// dummy is a hash of a random-looking password at the current cost, compared against when
// the username does not exist.
func (uc *UseCase) dummy() []byte {
	uc.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("rationshop-no-such-user"), usecase.PasswordCost)
		if err == nil {
			uc.dummyHash = h
		}
	})
	return uc.dummyHash
}
