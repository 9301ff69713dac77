package domain

// User is an account owned by the external identity provider. The access-control core only reads it.
// Email is empty for system accounts.
type User struct {
	ID    string
	Name  string
	Email string
}

// DisplayName returns Name, falling back to Email when the user never set one.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
