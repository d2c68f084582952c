package entity

import "time"

// Contact belongs to exactly one User through Username.
type Contact struct {
	ID        int64
	Username  string
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelongsTo reports whether the contact is owned by username.
func (c *Contact) BelongsTo(username string) bool {
	return c != nil && c.Username == username
}
