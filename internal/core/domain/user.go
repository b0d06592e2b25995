package domain

// User models an account that can authenticate and own tasks.
type User struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
	IsSuperuser  bool   `json:"is_superuser"`
}
