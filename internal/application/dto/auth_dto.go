package dto

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse carries the session token (also set as cookie) and the user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	// Redirect is the landing page for the role.
	Redirect string `json:"redirect"`
}

// ForgotPasswordRequest body for POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}
