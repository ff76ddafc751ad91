package models

// User is a row of the users table without its password hash.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// UserDetail is a user with the ids of the jobs they applied to.
type UserDetail struct {
	User
	Jobs []int `json:"jobs"`
}

// Credentials is the stored login data of a user.
type Credentials struct {
	User
	Password string `db:"password"`
}

// NewUser is a user ready to insert. Password holds the bcrypt hash.
type NewUser struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=72"`
	FirstName string `json:"firstName" validate:"required,max=25"`
	LastName  string `json:"lastName" validate:"required,max=25"`
	Email     string `json:"email" validate:"required,email,max=60"`
}

// CreateUserRequest is the body of POST /users. Only admins call it and
// they may create other admins.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=72"`
	FirstName string `json:"firstName" validate:"required,max=25"`
	LastName  string `json:"lastName" validate:"required,max=25"`
	Email     string `json:"email" validate:"required,email,max=60"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest is the body of PATCH /users/:username.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=25"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=25"`
	Password  *string `json:"password" validate:"omitempty,min=5,max=72"`
	Email     *string `json:"email" validate:"omitempty,email,max=60"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// LoginRequest is the body of POST /auth/token.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateColumns maps request field names to user columns.
var UpdateColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}
