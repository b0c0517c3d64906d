package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jortega-dev/taskboard-api/internal/api/shared"
	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// InspectionHandler handles vehicle inspection API requests.
type InspectionHandler struct {
	inspectionStore store.InspectionStore
	validator       *validator.Validate
}

// NewInspectionHandler creates a new InspectionHandler with the given
// dependencies.
func NewInspectionHandler(inspectionStore store.InspectionStore) *InspectionHandler {
	return &InspectionHandler{
		inspectionStore: inspectionStore,
		validator:       validator.New(),
	}
}

// Create handles POST /inspections.
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateInspectionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	contacts := make([]domain.InspectionContact, 0, len(req.Contacts))
	for _, c := range req.Contacts {
		contacts = append(contacts, domain.InspectionContact{
			Name:  c.Name,
			Phone: c.Phone,
			Email: c.Email,
			Role:  c.Role,
		})
	}

	insp, err := domain.NewInspection(
		req.Vehicle,
		req.Year,
		req.Model,
		req.Color,
		req.InspectedAt,
		domain.InspectionKind(req.Kind),
		req.City,
		req.State,
		req.Notes,
		req.FolderLink,
		contacts,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.inspectionStore.Create(r.Context(), insp); err != nil {
		HandleAPIError(w, r, err, "Failed to create inspection")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, insp)
}

// Get handles GET /inspections/{id}.
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	inspectionID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	insp, err := h.inspectionStore.Get(r.Context(), inspectionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, insp)
}

// List handles GET /inspections, newest inspection date first.
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	offset, limit := getPagination(r)

	inspections, err := h.inspectionStore.List(r.Context(), offset, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list inspections")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, inspections)
}
