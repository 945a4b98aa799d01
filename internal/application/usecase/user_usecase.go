package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/access"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// MinPasswordLength applies to every password set through the identity store.
const MinPasswordLength = 8

// MaxPasswordLength is the bcrypt input limit in bytes.
const MaxPasswordLength = 72

// PasswordCost is the bcrypt cost used for new hashes. Tests may lower it.
var PasswordCost = bcrypt.DefaultCost

// UserUseCase is the identity store: user creation and self-service profile.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case on the user persistence port.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// CreateUser validates and hashes the input, then persists the user.
// Conflicts surface as domain.ErrDuplicateUsername or domain.ErrDuplicateEmail; nothing is written then.
func (uc *UserUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	user, err := NewUser(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// GetProfile returns the caller's own user record.
func (uc *UserUseCase) GetProfile(ctx context.Context, id access.Identity) (*dto.UserResponse, error) {
	if err := access.Require(id, access.OpViewProfile); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id.UserID())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// UpdateProfile changes name, email and contact of the caller. Role, username and password
// are never touched here.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id access.Identity, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := access.Require(id, access.OpUpdateProfile); err != nil {
		return nil, err
	}
	name := entity.NormalizeName(in.Name)
	email := entity.NormalizeEmail(in.Email)
	contact := strings.TrimSpace(in.Contact)
	if name == "" || email == "" || contact == "" {
		return nil, domain.ErrMissingField
	}
	if !validEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	user, err := uc.repo.GetByID(ctx, id.UserID())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	user.Name = name
	user.Email = email
	user.Contact = contact
	user.UpdatedAt = time.Now()
	if err := uc.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// NewUser builds a validated user entity with a bcrypt password hash. The clear-text
// password does not leave this function.
func NewUser(in dto.CreateUserRequest) (*entity.User, error) {
	username := entity.NormalizeUsername(in.Username)
	email := entity.NormalizeEmail(in.Email)
	name := entity.NormalizeName(in.Name)
	contact := strings.TrimSpace(in.Contact)
	if username == "" || email == "" || in.Password == "" || name == "" {
		return nil, domain.ErrMissingField
	}
	if !validEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if len(in.Password) > MaxPasswordLength {
		return nil, domain.ErrPasswordTooLong
	}
	switch in.Role {
	case entity.RoleAdmin:
		if in.ShopID != "" {
			return nil, domain.ErrInvalidRole
		}
	case entity.RoleManager:
		if in.ShopID == "" {
			return nil, domain.ErrMissingField
		}
	default:
		return nil, domain.ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		ShopID:       in.ShopID,
		Name:         name,
		Contact:      contact,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func validEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t") && strings.Count(s, "@") == 1
}

// ValidID reports whether s is a well-formed entity id.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
