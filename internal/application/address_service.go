package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
	repo "github.com/oksasatya/go-contact-management/internal/domain/repository"
	"github.com/oksasatya/go-contact-management/pkg/validation"
)

// AddressService walks the ownership chain user -> contact -> address before
// every store call.
type AddressService struct {
	Repo     repo.AddressRepository
	Contacts *ContactService
	Logger   *logrus.Logger
}

func NewAddressService(repo repo.AddressRepository, contacts *ContactService, logger *logrus.Logger) *AddressService {
	return &AddressService{Repo: repo, Contacts: contacts, Logger: logger}
}

func (s *AddressService) Create(ctx context.Context, user *entity.User, req CreateAddressRequest) (*AddressResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.Contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return nil, err
	}

	a := &entity.Address{
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		s.logStoreError(err, req.ContactID, 0, "create address failed")
		return nil, err
	}

	resp := ToAddressResponse(a)
	return &resp, nil
}

// CheckAddressMustExist looks the address up under the exact contact id.
func (s *AddressService) CheckAddressMustExist(ctx context.Context, contactID, addressID int64) (*entity.Address, error) {
	a, err := s.Repo.GetByIDAndContactID(ctx, addressID, contactID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		s.logStoreError(err, contactID, addressID, "get address failed")
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Get(ctx context.Context, user *entity.User, req GetAddressRequest) (*AddressResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.Contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return nil, err
	}

	a, err := s.CheckAddressMustExist(ctx, req.ContactID, req.ID)
	if err != nil {
		return nil, err
	}

	resp := ToAddressResponse(a)
	return &resp, nil
}

// Update replaces every mutable field of the address keyed by (id, contact_id).
func (s *AddressService) Update(ctx context.Context, user *entity.User, req UpdateAddressRequest) (*AddressResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.Contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return nil, err
	}
	a, err := s.CheckAddressMustExist(ctx, req.ContactID, req.ID)
	if err != nil {
		return nil, err
	}

	a.Street = req.Street
	a.City = req.City
	a.Province = req.Province
	a.Country = req.Country
	a.PostalCode = req.PostalCode
	if err := s.Repo.Update(ctx, a); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAddressNotFound
		}
		s.logStoreError(err, req.ContactID, req.ID, "update address failed")
		return nil, err
	}

	resp := ToAddressResponse(a)
	return &resp, nil
}

func (s *AddressService) Remove(ctx context.Context, user *entity.User, req RemoveAddressRequest) error {
	if err := validation.Validate(req); err != nil {
		return err
	}
	if _, err := s.Contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return err
	}
	if _, err := s.CheckAddressMustExist(ctx, req.ContactID, req.ID); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, req.ID, req.ContactID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAddressNotFound
		}
		s.logStoreError(err, req.ContactID, req.ID, "delete address failed")
		return err
	}
	return nil
}

// List returns every address of the contact, unpaginated.
func (s *AddressService) List(ctx context.Context, user *entity.User, contactID int64) ([]AddressResponse, error) {
	if err := validation.Validate(ListAddressRequest{ContactID: contactID}); err != nil {
		return nil, err
	}
	if _, err := s.Contacts.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.Repo.ListByContactID(ctx, contactID)
	if err != nil {
		s.logStoreError(err, contactID, 0, "list addresses failed")
		return nil, err
	}

	out := make([]AddressResponse, 0, len(addresses))
	for i := range addresses {
		out = append(out, ToAddressResponse(&addresses[i]))
	}
	return out, nil
}

func (s *AddressService) logStoreError(err error, contactID, addressID int64, msg string) {
	if s.Logger == nil {
		return
	}
	fields := logrus.Fields{"contact_id": contactID}
	if addressID != 0 {
		fields["address_id"] = addressID
	}
	s.Logger.WithError(err).WithFields(fields).Error(msg)
}
