package dto

import "time"

// CreateUserRequest input of the identity store (password in clear text, hashed in the use case).
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	ShopID   string `json:"shop_id,omitempty"`
}

// UpdateProfileRequest self-service profile update.
type UpdateProfileRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Contact string `json:"contact" form:"contact"`
}

// UserResponse is a user without its password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Role      string    `json:"role"`
	ShopID    string    `json:"shop_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
