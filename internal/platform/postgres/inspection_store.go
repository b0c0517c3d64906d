package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/platform/logger"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// InspectionStore implements store.InspectionStore on PostgreSQL. It takes
// a *sql.DB rather than a DBTX because Create writes the inspection and its
// contacts inside a transaction of its own.
type InspectionStore struct {
	db *sql.DB
}

var _ store.InspectionStore = (*InspectionStore)(nil)

// NewInspectionStore creates a PostgreSQL-backed inspection store.
func NewInspectionStore(db *sql.DB) *InspectionStore {
	return &InspectionStore{db: db}
}

// Create implements store.InspectionStore.Create.
func (s *InspectionStore) Create(ctx context.Context, insp *domain.Inspection) error {
	log := logger.FromContext(ctx)

	if err := insp.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO inspections (id, vehicle, year, model, color, inspected_at, kind, city, state, notes, folder_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = tx.ExecContext(ctx, query,
		insp.ID,
		insp.Vehicle,
		insp.Year,
		insp.Model,
		insp.Color,
		insp.InspectedAt,
		insp.Kind,
		insp.City,
		insp.State,
		insp.Notes,
		insp.FolderLink,
		insp.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert inspection", "error", err, "inspection_id", insp.ID)
		return fmt.Errorf("failed to insert inspection: %w", err)
	}

	contactQuery := `
		INSERT INTO inspection_contacts (id, inspection_id, name, phone, email, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, c := range insp.Contacts {
		if _, err := tx.ExecContext(ctx, contactQuery,
			c.ID,
			insp.ID,
			c.Name,
			c.Phone,
			c.Email,
			c.Role,
		); err != nil {
			log.Error("failed to insert inspection contact",
				"error", err,
				"inspection_id", insp.ID,
				"contact_id", c.ID)
			return fmt.Errorf("failed to insert inspection contact: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit inspection: %w", err)
	}

	return nil
}

// Get implements store.InspectionStore.Get.
func (s *InspectionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	query := `
		SELECT id, vehicle, year, model, color, inspected_at, kind, city, state, notes, folder_link, created_at
		FROM inspections
		WHERE id = $1
	`

	var insp domain.Inspection
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&insp.ID,
		&insp.Vehicle,
		&insp.Year,
		&insp.Model,
		&insp.Color,
		&insp.InspectedAt,
		&insp.Kind,
		&insp.City,
		&insp.State,
		&insp.Notes,
		&insp.FolderLink,
		&insp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrInspectionNotFound
		}
		return nil, fmt.Errorf("failed to query inspection: %w", err)
	}

	contacts, err := s.contactsFor(ctx, []uuid.UUID{insp.ID})
	if err != nil {
		return nil, err
	}
	insp.Contacts = contacts[insp.ID]
	if insp.Contacts == nil {
		insp.Contacts = []domain.InspectionContact{}
	}

	return &insp, nil
}

// List implements store.InspectionStore.List.
func (s *InspectionStore) List(ctx context.Context, offset, limit int) ([]*domain.Inspection, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, vehicle, year, model, color, inspected_at, kind, city, state, notes, folder_link, created_at
		FROM inspections
		ORDER BY inspected_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		log.Error("failed to query inspections", "error", err)
		return nil, fmt.Errorf("failed to query inspections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	inspections := make([]*domain.Inspection, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var insp domain.Inspection
		if err := rows.Scan(
			&insp.ID,
			&insp.Vehicle,
			&insp.Year,
			&insp.Model,
			&insp.Color,
			&insp.InspectedAt,
			&insp.Kind,
			&insp.City,
			&insp.State,
			&insp.Notes,
			&insp.FolderLink,
			&insp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inspection row: %w", err)
		}
		insp.Contacts = []domain.InspectionContact{}
		inspections = append(inspections, &insp)
		ids = append(ids, insp.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inspection rows: %w", err)
	}

	if len(ids) == 0 {
		return inspections, nil
	}

	contacts, err := s.contactsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, insp := range inspections {
		if list, ok := contacts[insp.ID]; ok {
			insp.Contacts = list
		}
	}

	return inspections, nil
}

// contactsFor loads the contacts of the given inspections in one query,
// grouped by inspection ID.
func (s *InspectionStore) contactsFor(
	ctx context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID][]domain.InspectionContact, error) {
	query := `
		SELECT id, inspection_id, name, phone, email, role
		FROM inspection_contacts
		WHERE inspection_id = ANY($1)
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query inspection contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	grouped := make(map[uuid.UUID][]domain.InspectionContact)
	for rows.Next() {
		var (
			c            domain.InspectionContact
			inspectionID uuid.UUID
		)
		if err := rows.Scan(&c.ID, &inspectionID, &c.Name, &c.Phone, &c.Email, &c.Role); err != nil {
			return nil, fmt.Errorf("failed to scan inspection contact row: %w", err)
		}
		grouped[inspectionID] = append(grouped[inspectionID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inspection contact rows: %w", err)
	}

	return grouped, nil
}
