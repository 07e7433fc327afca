package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/judiciary-service/internal/api/dto"
	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/service"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

// CourtsHandler exposes court hierarchy endpoints.
type CourtsHandler struct {
	courtService *service.CourtService
}

// NewCourtsHandler constructs handler.
func NewCourtsHandler(courtService *service.CourtService) *CourtsHandler {
	return &CourtsHandler{courtService: courtService}
}

// Create handles POST /courts.
func (h *CourtsHandler) Create(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.CourtCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Type == "" {
		return apperrors.NewValidationError("name and type required", nil)
	}

	court, err := h.courtService.CreateCourt(c.Context(), actor, service.CourtCreateInput{
		Name:           req.Name,
		Type:           req.Type,
		Location:       req.Location,
		Address:        req.Address,
		ContactInfo:    req.ContactInfo,
		Description:    req.Description,
		CircuitCourtID: req.CircuitCourtID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": courtResponse(court)})
}

// List handles GET /courts.
func (h *CourtsHandler) List(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}

	var filters service.CourtListFilters
	if typeStr := c.Query("type"); typeStr != "" {
		courtType := domain.CourtType(typeStr)
		filters.Type = &courtType
	}
	if active := c.Query("active"); active != "" {
		val := active == "true"
		filters.Active = &val
	}
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	filters.Offset = (page - 1) * pageSize
	filters.Limit = pageSize

	courts, err := h.courtService.ListCourts(c.Context(), actor, filters)
	if err != nil {
		return err
	}
	resp := make([]dto.CourtResponse, 0, len(courts))
	for i := range courts {
		resp = append(resp, courtResponse(&courts[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /courts/:id.
func (h *CourtsHandler) Get(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	court, err := h.courtService.GetCourt(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": courtResponse(court)})
}

// Update handles PUT /courts/:id.
func (h *CourtsHandler) Update(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.CourtUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	court, err := h.courtService.UpdateCourt(c.Context(), actor, c.Params("id"), service.CourtUpdateInput{
		Name:           req.Name,
		Location:       req.Location,
		Address:        req.Address,
		ContactInfo:    req.ContactInfo,
		Description:    req.Description,
		CircuitCourtID: req.CircuitCourtID,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": courtResponse(court)})
}

// Deactivate handles DELETE /courts/:id. Courts are soft-deactivated, never
// removed.
func (h *CourtsHandler) Deactivate(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	court, err := h.courtService.DeactivateCourt(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": courtResponse(court)})
}

func courtResponse(court *domain.Court) dto.CourtResponse {
	return dto.CourtResponse{
		ID:             court.ID,
		Name:           court.Name,
		Type:           court.Type,
		Location:       court.Location,
		Address:        court.Address,
		ContactInfo:    court.ContactInfo,
		Description:    court.Description,
		CircuitCourtID: court.CircuitCourtID,
		IsActive:       court.IsActive,
		CreatedAt:      court.CreatedAt,
		UpdatedAt:      court.UpdatedAt,
	}
}
