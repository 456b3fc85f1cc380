package dto

// GrantSpec is one role/app item of the batch enrollment shape. Either field
// may be a canonical ID or a name.
type GrantSpec struct {
	Role string `json:"role"`
	App  string `json:"app"`
}

// EnrollInput accepts both enrollment shapes, which may be combined: the
// single role_name/app_name pair (both-or-neither) and the apps array.
type EnrollInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	RoleName string      `json:"role_name"`
	AppName  string      `json:"app_name"`
	Apps     []GrantSpec `json:"apps"`
}
