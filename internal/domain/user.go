// internal/domain/user.go
package domain

// User represents the signed-in wallet owner.
type User struct {
	Name string `json:"name"` // Shown in the home greeting
}

// NewUser creates a new User instance.
func NewUser(name string) *User {
	return &User{Name: name}
}
