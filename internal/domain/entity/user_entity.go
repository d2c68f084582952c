package entity

import "time"

// User is the principal owning contacts.
// Username is the stable identity key; Password holds a bcrypt hash.
// Token is nil when the user is logged out.
type User struct {
	Username  string
	Password  string
	Name      string
	Token     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
