package repository

import (
	"context"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
)

// AddressRepository keys every single-row operation by (id, contact_id).
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	GetByIDAndContactID(ctx context.Context, id, contactID int64) (*entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, id, contactID int64) error
	ListByContactID(ctx context.Context, contactID int64) ([]entity.Address, error)
}
