package dto

// AdminCreateUserRequest payload for admin-created accounts.
type AdminCreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// AdminUpdateUserRequest payload for admin account edits. Nil fields are
// left unchanged, so promotion and demotion are explicit.
type AdminUpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
}
