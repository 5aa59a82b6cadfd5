package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

var (
	ErrDoctorExists   = errors.New("doctor already exists")
	ErrDoctorNotFound = errors.New("doctor not found")
)

// DoctorService manages the clinic roster.
type DoctorService interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Add(ctx context.Context, d models.Doctor) (*models.Doctor, error)
	Remove(ctx context.Context, email string) error
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) Add(ctx context.Context, d models.Doctor) (*models.Doctor, error) {
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	created, err := s.Repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDuplicateEmail) {
			return nil, ErrDoctorExists
		}
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	return created, nil
}

func (s *DefaultDoctorService) Remove(ctx context.Context, email string) error {
	if err := s.Repo.DeleteByEmail(ctx, strings.ToLower(strings.TrimSpace(email))); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to remove doctor: %w", err)
	}
	return nil
}
