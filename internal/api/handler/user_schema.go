package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

// putUserRequest is the full-replacement form: unspecified optional fields
// fall back to their zero defaults (an omitted is_active deactivates).
type putUserRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email"     validate:"required,email"`
	Password    string `json:"password"  validate:"omitempty,min=8"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// patchUserRequest is the partial form: absent fields stay untouched.
type patchUserRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"    validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

type loginRequest struct {
	// The login form follows the OAuth2 password-grant field names, so
	// "username" carries the email.
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// --- Response types ---

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

type listUsersResponse struct {
	Data []userResponse `json:"data"`
}
