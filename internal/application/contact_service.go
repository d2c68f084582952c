package application

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
	repo "github.com/oksasatya/go-contact-management/internal/domain/repository"
	"github.com/oksasatya/go-contact-management/pkg/validation"
)

// Paging defaults applied by transports when the query omits them.
const (
	DefaultPage = 1
	DefaultSize = 10
)

type ContactService struct {
	Repo   repo.ContactRepository
	Logger *logrus.Logger
}

func NewContactService(repo repo.ContactRepository, logger *logrus.Logger) *ContactService {
	return &ContactService{Repo: repo, Logger: logger}
}

func (s *ContactService) Create(ctx context.Context, user *entity.User, req CreateContactRequest) (*ContactResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	c := &entity.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		s.logStoreError(err, user.Username, 0, "create contact failed")
		return nil, err
	}

	resp := ToContactResponse(c)
	return &resp, nil
}

// CheckContactMustExist is the ownership guard: the lookup is keyed by
// (id, username), so a contact owned by another user is simply not found.
func (s *ContactService) CheckContactMustExist(ctx context.Context, username string, contactID int64) (*entity.Contact, error) {
	c, err := s.Repo.GetByIDAndUsername(ctx, contactID, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		s.logStoreError(err, username, contactID, "get contact failed")
		return nil, err
	}
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, user *entity.User, contactID int64) (*ContactResponse, error) {
	if err := validation.Validate(GetContactRequest{ID: contactID}); err != nil {
		return nil, err
	}

	c, err := s.CheckContactMustExist(ctx, user.Username, contactID)
	if err != nil {
		return nil, err
	}

	resp := ToContactResponse(c)
	return &resp, nil
}

// Update replaces every mutable field; absent optional fields become null.
func (s *ContactService) Update(ctx context.Context, user *entity.User, req UpdateContactRequest) (*ContactResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	c, err := s.CheckContactMustExist(ctx, user.Username, req.ID)
	if err != nil {
		return nil, err
	}

	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.Email = req.Email
	c.Phone = req.Phone
	if err := s.Repo.Update(ctx, c); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		s.logStoreError(err, user.Username, req.ID, "update contact failed")
		return nil, err
	}

	resp := ToContactResponse(c)
	return &resp, nil
}

func (s *ContactService) Remove(ctx context.Context, user *entity.User, contactID int64) error {
	if err := validation.Validate(GetContactRequest{ID: contactID}); err != nil {
		return err
	}

	if _, err := s.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, contactID, user.Username); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrContactNotFound
		}
		s.logStoreError(err, user.Username, contactID, "delete contact failed")
		return err
	}
	return nil
}

// Search returns one page of the user's contacts matching req, ordered by id.
func (s *ContactService) Search(ctx context.Context, user *entity.User, req SearchContactRequest) ([]ContactResponse, Paging, error) {
	if err := validation.Validate(req); err != nil {
		return nil, Paging{}, err
	}

	f := repo.ContactFilter{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	// pages whose offset does not fit in an int lie past any result set
	var contacts []entity.Contact
	if req.Page-1 <= math.MaxInt/req.Size {
		var err error
		contacts, err = s.Repo.Search(ctx, f, (req.Page-1)*req.Size, req.Size)
		if err != nil {
			s.logStoreError(err, user.Username, 0, "search contacts failed")
			return nil, Paging{}, err
		}
	}
	total, err := s.Repo.Count(ctx, f)
	if err != nil {
		s.logStoreError(err, user.Username, 0, "count contacts failed")
		return nil, Paging{}, err
	}

	out := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, ToContactResponse(&contacts[i]))
	}
	return out, Paging{
		CurrentPage: req.Page,
		TotalPage:   TotalPages(total, req.Size),
		Size:        req.Size,
	}, nil
}

// TotalPages is ceil(total/size), and 0 for an empty result.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func (s *ContactService) logStoreError(err error, username string, contactID int64, msg string) {
	if s.Logger == nil {
		return
	}
	e := s.Logger.WithError(err).WithField("username", username)
	if contactID != 0 {
		e = e.WithField("contact_id", contactID)
	}
	e.Error(msg)
}
