package doctorRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

var (
	// ErrDuplicateEmail is returned when a doctor with the same email exists.
	ErrDuplicateEmail = errors.New("doctor email already exists")
	// ErrNotFound is returned when no doctor matches.
	ErrNotFound = errors.New("doctor not found")
)

// DoctorRepository defines methods for the doctor roster.
type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor models.Doctor) (*models.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) error
}
