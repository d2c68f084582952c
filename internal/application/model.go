package application

import "github.com/oksasatya/go-contact-management/internal/domain/entity"

// Requests carry their validation schema as struct tags; see pkg/validation.

type RegisterUserRequest struct {
	Username string `json:"username" validate:"name100"`
	Password string `json:"password" validate:"name100"`
	Name     string `json:"name" validate:"name100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"name100"`
	Password string `json:"password" validate:"name100"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitnil,name100"`
	Password *string `json:"password" validate:"omitnil,name100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"name100"`
	LastName  *string `json:"last_name" validate:"omitnil,name100"`
	Email     *string `json:"email" validate:"omitnil,max=100,email"`
	Phone     *string `json:"phone" validate:"omitnil,min=1,max=20"`
}

type UpdateContactRequest struct {
	ID        int64   `json:"id" validate:"id"`
	FirstName string  `json:"first_name" validate:"name100"`
	LastName  *string `json:"last_name" validate:"omitnil,name100"`
	Email     *string `json:"email" validate:"omitnil,max=100,email"`
	Phone     *string `json:"phone" validate:"omitnil,min=1,max=20"`
}

type GetContactRequest struct {
	ID int64 `json:"id" validate:"id"`
}

type SearchContactRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=1"`
	Email *string `json:"email" validate:"omitnil,min=1"`
	Phone *string `json:"phone" validate:"omitnil,min=1"`
	Page  int     `json:"page" validate:"gte=1"`
	Size  int     `json:"size" validate:"gte=1,max=100"`
}

type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

type CreateAddressRequest struct {
	ContactID  int64   `json:"contact_id" validate:"id"`
	Street     *string `json:"street" validate:"omitnil,max=255"`
	City       *string `json:"city" validate:"omitnil,max=100"`
	Province   *string `json:"province" validate:"omitnil,max=100"`
	Country    string  `json:"country" validate:"name100"`
	PostalCode string  `json:"postal_code" validate:"min=1,max=10"`
}

type GetAddressRequest struct {
	ContactID int64 `json:"contact_id" validate:"id"`
	ID        int64 `json:"id" validate:"id"`
}

type UpdateAddressRequest struct {
	ID         int64   `json:"id" validate:"id"`
	ContactID  int64   `json:"contact_id" validate:"id"`
	Street     *string `json:"street" validate:"omitnil,max=255"`
	City       *string `json:"city" validate:"omitnil,max=100"`
	Province   *string `json:"province" validate:"omitnil,max=100"`
	Country    string  `json:"country" validate:"name100"`
	PostalCode string  `json:"postal_code" validate:"min=1,max=10"`
}

type RemoveAddressRequest = GetAddressRequest

type ListAddressRequest struct {
	ContactID int64 `json:"contact_id" validate:"id"`
}

type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// ToUserResponse never exposes the password hash; the token is only set
// when the caller passes it explicitly after login.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}

func ToContactResponse(c *entity.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// ToAddressResponse drops contact_id; callers already addressed the contact in the path.
func ToAddressResponse(a *entity.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
