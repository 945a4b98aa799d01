package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrInvalidQuantity  = errors.New("invalid quantity value")
	ErrMissingField     = errors.New("missing required fields")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidRole      = errors.New("invalid role")
	ErrPasswordTooShort = errors.New("password must have at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must have at most 72 bytes")

	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateDistrict  = errors.New("district already exists")
	ErrAlreadyStocked     = errors.New("product already exists in shop inventory")
	ErrShopAlreadyManaged = errors.New("shop already has a manager")
	ErrDuplicateProduct   = errors.New("product already exists")

	ErrUnknownShop     = errors.New("shop not found")
	ErrUnknownProduct  = errors.New("product not found")
	ErrUnknownDistrict = errors.New("district not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrExportDisabled = errors.New("stock sheet export is disabled")
)

// Kind groups domain errors the way callers recover from them.
type Kind int

const (
	KindStorage Kind = iota
	KindAuth
	KindAuthz
	KindValidation
	KindConflict
	KindNotFound
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidCredentials, KindAuth},
	{ErrUnauthorized, KindAuthz},
	{ErrInvalidQuantity, KindValidation},
	{ErrMissingField, KindValidation},
	{ErrInvalidEmail, KindValidation},
	{ErrInvalidRole, KindValidation},
	{ErrPasswordTooShort, KindValidation},
	{ErrPasswordTooLong, KindValidation},
	{ErrDuplicateUsername, KindConflict},
	{ErrDuplicateEmail, KindConflict},
	{ErrDuplicateDistrict, KindConflict},
	{ErrAlreadyStocked, KindConflict},
	{ErrShopAlreadyManaged, KindConflict},
	{ErrDuplicateProduct, KindConflict},
	{ErrUnknownShop, KindNotFound},
	{ErrUnknownProduct, KindNotFound},
	{ErrUnknownDistrict, KindNotFound},
	{ErrUserNotFound, KindNotFound},
}

// KindOf classifies err. Anything that is not a known domain error is a storage failure.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindStorage
}
