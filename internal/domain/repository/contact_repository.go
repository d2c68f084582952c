package repository

import (
	"context"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
)

// ContactFilter narrows a contact query. Nil fields impose no constraint;
// Username is always applied.
type ContactFilter struct {
	Username string
	Name     *string // first_name or last_name, case-insensitive
	Email    *string
	Phone    *string
}

// ContactRepository keys every single-row operation by (id, username) so a
// contact owned by someone else is indistinguishable from a missing one.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	GetByIDAndUsername(ctx context.Context, id int64, username string) (*entity.Contact, error)
	Update(ctx context.Context, c *entity.Contact) error
	Delete(ctx context.Context, id int64, username string) error
	Search(ctx context.Context, f ContactFilter, offset, limit int) ([]entity.Contact, error)
	Count(ctx context.Context, f ContactFilter) (int, error)
}
