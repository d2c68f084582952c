package memory

import (
	"fmt"

	"github.com/oksasatya/go-contact-management/internal/domain/repository"
)

// ConstraintError mirrors the unique and foreign key violations Postgres
// would raise for the same write.
type ConstraintError struct {
	Kind       string
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint violated: %s", e.Kind, e.Constraint)
}

// Unwrap lets unique violations match repository.ErrDuplicate.
func (e *ConstraintError) Unwrap() error {
	if e.Kind == "unique" {
		return repository.ErrDuplicate
	}
	return nil
}

func errDuplicate(c string) error  { return &ConstraintError{Kind: "unique", Constraint: c} }
func errForeignKey(c string) error { return &ConstraintError{Kind: "foreign key", Constraint: c} }
