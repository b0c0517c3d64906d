package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/jortega-dev/taskboard-api/internal/domain"
)

// InspectionStore defines the interface for inspection persistence.
// An inspection and its contacts are written atomically.
type InspectionStore interface {
	// Create saves a new inspection together with its contacts.
	Create(ctx context.Context, insp *domain.Inspection) error

	// Get retrieves an inspection with its contacts.
	// Returns ErrInspectionNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)

	// List returns all inspections (contacts included) ordered by the
	// inspection date, honoring offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.Inspection, error)
}
