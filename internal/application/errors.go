package application

import (
	"errors"
	"fmt"
)

// ErrNotFound is the kind shared by every broken ownership chain. Callers
// cannot tell a missing entity from one owned by another user.
var ErrNotFound = errors.New("not found")

var (
	ErrContactNotFound    = fmt.Errorf("Contact is %w", ErrNotFound)
	ErrAddressNotFound    = fmt.Errorf("Address %w", ErrNotFound)
	ErrUnauthenticated    = errors.New("unauthorized")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("username or password is wrong")
)
