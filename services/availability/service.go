package availability

import (
	"context"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/models"
)

// AvailabilityService computes open slots per service for a date.
type AvailabilityService interface {
	Available(ctx context.Context, date string) ([]models.Service, error)
	ServiceNames(ctx context.Context) ([]models.Service, error)
}

// DefaultAvailabilityService reads snapshots from the stores and runs Calculate.
type DefaultAvailabilityService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
}

// Available returns the catalog annotated with the open slots for date.
// An empty date is used as-is and normally matches no bookings.
func (s *DefaultAvailabilityService) Available(ctx context.Context, date string) ([]models.Service, error) {
	services, err := s.Catalog.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	bookings, err := s.Bookings.FetchByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %q: %w", date, err)
	}
	return Calculate(services, bookings, date), nil
}

// ServiceNames returns the catalog with names only.
func (s *DefaultAvailabilityService) ServiceNames(ctx context.Context) ([]models.Service, error) {
	services, err := s.Catalog.FetchNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load service names: %w", err)
	}
	return services, nil
}
