package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/domain/entity"
	"github.com/oksasatya/go-contact-management/pkg/validation"
)

func seedContact(t *testing.T, s services, u *entity.User) *application.ContactResponse {
	t.Helper()
	c, err := s.contacts.Create(context.Background(), u, application.CreateContactRequest{FirstName: "test"})
	if err != nil {
		t.Fatalf("seed contact: %v", err)
	}
	return c
}

func TestAddressService_Create_Success(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	u := seedUser(t, s, "test")
	c := seedContact(t, s, u)

	got, err := s.addresses.Create(ctx, u, application.CreateAddressRequest{
		ContactID:  c.ID,
		Street:     strp("Jl. Test"),
		City:       strp("Test"),
		Province:   strp("Test"),
		Country:    "Test",
		PostalCode: "12345",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID == 0 || *got.Street != "Jl. Test" || got.Country != "Test" || got.PostalCode != "12345" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestAddressService_Create_Invalid(t *testing.T) {
	s := newTestServices(t)
	u := seedUser(t, s, "test")
	c := seedContact(t, s, u)

	_, err := s.addresses.Create(context.Background(), u, application.CreateAddressRequest{
		ContactID:  c.ID,
		Country:    "",
		PostalCode: "12345678901",
	})
	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["country"]; !ok {
		t.Errorf("expected country error, got %v", ve.Fields)
	}
	if ve.Fields["postal_code"] != "must be at most 10 characters long" {
		t.Errorf("unexpected postal_code message %q", ve.Fields["postal_code"])
	}
}

func TestAddressService_Create_ContactNotOwned(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	c := seedContact(t, s, alice)

	_, err := s.addresses.Create(ctx, bob, application.CreateAddressRequest{ContactID: c.ID, Country: "X", PostalCode: "1"})
	if !errors.Is(err, application.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	_, err = s.addresses.Create(ctx, alice, application.CreateAddressRequest{ContactID: 9999, Country: "X", PostalCode: "1"})
	if !errors.Is(err, application.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound for unknown contact, got %v", err)
	}
}

func TestAddressService_OwnershipChain(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	u := seedUser(t, s, "test")
	c1 := seedContact(t, s, u)
	c2 := seedContact(t, s, u)

	a, err := s.addresses.Create(ctx, u, application.CreateAddressRequest{ContactID: c1.ID, Country: "X", PostalCode: "1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// right address id, wrong contact
	_, err = s.addresses.Get(ctx, u, application.GetAddressRequest{ContactID: c2.ID, ID: a.ID})
	if !errors.Is(err, application.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}

	got, err := s.addresses.Get(ctx, u, application.GetAddressRequest{ContactID: c1.ID, ID: a.ID})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Country != "X" || got.PostalCode != "1" {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestAddressService_Update(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	u := seedUser(t, s, "test")
	c := seedContact(t, s, u)
	a, _ := s.addresses.Create(ctx, u, application.CreateAddressRequest{
		ContactID: c.ID, Street: strp("Old"), City: strp("Old"), Country: "X", PostalCode: "1",
	})

	got, err := s.addresses.Update(ctx, u, application.UpdateAddressRequest{
		ID: a.ID, ContactID: c.ID, City: strp("New"), Country: "Y", PostalCode: "2",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Street != nil || *got.City != "New" || got.Country != "Y" || got.PostalCode != "2" {
		t.Fatalf("expected full replacement, got %+v", got)
	}

	_, err = s.addresses.Update(ctx, u, application.UpdateAddressRequest{ID: a.ID, ContactID: c.ID})
	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["country"]; !ok {
		t.Errorf("expected country error, got %v", ve.Fields)
	}
	if _, ok := ve.Fields["postal_code"]; !ok {
		t.Errorf("expected postal_code error, got %v", ve.Fields)
	}

	_, err = s.addresses.Update(ctx, u, application.UpdateAddressRequest{ID: a.ID + 1, ContactID: c.ID, Country: "Y", PostalCode: "2"})
	if !errors.Is(err, application.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestAddressService_Remove_Twice(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	u := seedUser(t, s, "test")
	c := seedContact(t, s, u)
	a, _ := s.addresses.Create(ctx, u, application.CreateAddressRequest{ContactID: c.ID, Country: "X", PostalCode: "1"})

	req := application.RemoveAddressRequest{ContactID: c.ID, ID: a.ID}
	if err := s.addresses.Remove(ctx, u, req); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.addresses.Remove(ctx, u, req); !errors.Is(err, application.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestAddressService_List(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	u := seedUser(t, s, "test")
	other := seedUser(t, s, "other")
	c := seedContact(t, s, u)

	list, err := s.addresses.List(ctx, u, c.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}

	for _, country := range []string{"A", "B", "C"} {
		if _, err := s.addresses.Create(ctx, u, application.CreateAddressRequest{ContactID: c.ID, Country: country, PostalCode: "1"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	list, _ = s.addresses.List(ctx, u, c.ID)
	if len(list) != 3 || list[0].Country != "A" || list[2].Country != "C" {
		t.Fatalf("unexpected list %+v", list)
	}

	if _, err := s.addresses.List(ctx, other, c.ID); !errors.Is(err, application.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound for other user, got %v", err)
	}
}

func TestAddressService_ContactDeletedBreaksChain(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	u := seedUser(t, s, "test")
	c := seedContact(t, s, u)
	a, _ := s.addresses.Create(ctx, u, application.CreateAddressRequest{ContactID: c.ID, Country: "X", PostalCode: "1"})

	if err := s.contacts.Remove(ctx, u, c.ID); err != nil {
		t.Fatalf("Remove contact: %v", err)
	}
	_, err := s.addresses.Get(ctx, u, application.GetAddressRequest{ContactID: c.ID, ID: a.ID})
	if !errors.Is(err, application.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
