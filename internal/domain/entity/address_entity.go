package entity

import "time"

// Address belongs to exactly one Contact through ContactID.
type Address struct {
	ID         int64
	ContactID  int64
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
