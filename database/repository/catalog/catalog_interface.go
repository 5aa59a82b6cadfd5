package catalogRepo

import (
	"context"

	"doctorsportal/models"
)

// CatalogRepository defines read access to the service catalog.
type CatalogRepository interface {
	// FetchAll returns the full, unfiltered catalog.
	FetchAll(ctx context.Context) ([]models.Service, error)
	// FetchNames returns the catalog with only the name field populated.
	FetchNames(ctx context.Context) ([]models.Service, error)
}
