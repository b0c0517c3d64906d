package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InspectionKind distinguishes pickup inspections from delivery inspections.
type InspectionKind string

const (
	InspectionKindPickup   InspectionKind = "pickup"
	InspectionKindDelivery InspectionKind = "delivery"
)

// Inspection validation errors.
var (
	ErrEmptyInspectionID     = errors.New("inspection ID cannot be empty")
	ErrEmptyVehicle          = errors.New("vehicle cannot be empty")
	ErrInvalidInspectionKind = errors.New("inspection kind must be 'pickup' or 'delivery'")
	ErrInvalidInspectionYear = errors.New("vehicle year is out of range")
	ErrEmptyContactName      = errors.New("contact name cannot be empty")
	ErrEmptyContactRole      = errors.New("contact role cannot be empty")
)

// Inspection records a vehicle inspection appointment together with the
// contact persons involved on either end of the handover.
type Inspection struct {
	ID          uuid.UUID           `json:"id"`
	Vehicle     string              `json:"vehicle"`
	Year        int                 `json:"year"`
	Model       string              `json:"model"`
	Color       string              `json:"color"`
	InspectedAt time.Time           `json:"inspected_at"`
	Kind        InspectionKind      `json:"kind"`
	City        string              `json:"city"`
	State       string              `json:"state"`
	Notes       string              `json:"notes,omitempty"`
	FolderLink  string              `json:"folder_link,omitempty"`
	Contacts    []InspectionContact `json:"contacts"`
	CreatedAt   time.Time           `json:"created_at"`
}

// InspectionContact is a person attached to an inspection, for example the
// party releasing the vehicle or the party receiving it.
type InspectionContact struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
	Email string    `json:"email,omitempty"`
	Role  string    `json:"role"`
}

// IsValid reports whether the kind is one of the known values.
func (k InspectionKind) IsValid() bool {
	return k == InspectionKindPickup || k == InspectionKindDelivery
}

// NewInspection creates an Inspection with the given details and validates
// it. Contact IDs are assigned here.
func NewInspection(
	vehicle string,
	year int,
	model, color string,
	inspectedAt time.Time,
	kind InspectionKind,
	city, state, notes, folderLink string,
	contacts []InspectionContact,
) (*Inspection, error) {
	insp := &Inspection{
		ID:          uuid.New(),
		Vehicle:     strings.TrimSpace(vehicle),
		Year:        year,
		Model:       strings.TrimSpace(model),
		Color:       color,
		InspectedAt: inspectedAt,
		Kind:        kind,
		City:        city,
		State:       state,
		Notes:       notes,
		FolderLink:  folderLink,
		Contacts:    make([]InspectionContact, 0, len(contacts)),
		CreatedAt:   time.Now().UTC(),
	}

	for _, c := range contacts {
		c.ID = uuid.New()
		c.Name = strings.TrimSpace(c.Name)
		insp.Contacts = append(insp.Contacts, c)
	}

	if err := insp.Validate(); err != nil {
		return nil, err
	}

	return insp, nil
}

// Validate checks if the Inspection and its contacts have valid data.
func (i *Inspection) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyInspectionID
	}

	if i.Vehicle == "" || i.Model == "" {
		return ErrEmptyVehicle
	}

	if i.Year < 1900 || i.Year > time.Now().UTC().Year()+1 {
		return ErrInvalidInspectionYear
	}

	if !i.Kind.IsValid() {
		return ErrInvalidInspectionKind
	}

	for _, c := range i.Contacts {
		if c.Name == "" {
			return ErrEmptyContactName
		}
		if strings.TrimSpace(c.Role) == "" {
			return ErrEmptyContactRole
		}
	}

	return nil
}
