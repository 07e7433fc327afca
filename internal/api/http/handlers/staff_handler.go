package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/judiciary-service/internal/api/dto"
	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/service"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

// StaffHandler exposes staff record endpoints.
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Position == "" || req.CourtID == "" {
		return apperrors.NewValidationError("name, position and court_id required", nil)
	}

	staff, err := h.staffService.CreateStaff(c.Context(), actor, service.StaffCreateInput{
		Name:      req.Name,
		Position:  req.Position,
		CourtType: req.CourtType,
		CourtID:   req.CourtID,
		Email:     req.Email,
		Phone:     req.Phone,
		Bio:       req.Bio,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": staffResponse(staff)})
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}

	filters := parseStaffListFilters(c)
	list, err := h.staffService.ListStaff(c.Context(), actor, filters)
	if err != nil {
		return err
	}
	resp := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, staffResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	staff, err := h.staffService.GetStaff(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Update handles PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	staff, err := h.staffService.UpdateStaff(c.Context(), actor, c.Params("id"), service.StaffUpdateInput{
		Name:             req.Name,
		Position:         req.Position,
		CourtType:        req.CourtType,
		CourtID:          req.CourtID,
		Email:            req.Email,
		Phone:            req.Phone,
		Bio:              req.Bio,
		EmploymentStatus: req.EmploymentStatus,
		EffectiveDate:    req.EffectiveDate,
		LeaveEndDate:     req.LeaveEndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// ChangeStatus handles PATCH /staff/:id/status.
func (h *StaffHandler) ChangeStatus(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.StaffStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	staff, err := h.staffService.ChangeEmploymentStatus(c.Context(), actor, c.Params("id"), req.Status, req.EffectiveDate)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Delete handles DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	if err := h.staffService.DeleteStaff(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func parseStaffListFilters(c *fiber.Ctx) service.StaffListFilters {
	var filters service.StaffListFilters
	if courtID := c.Query("court_id"); courtID != "" {
		filters.CourtID = &courtID
	}
	if typeStr := c.Query("court_type"); typeStr != "" {
		courtType := domain.CourtType(typeStr)
		filters.CourtType = &courtType
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.EmploymentStatus(statusStr)
		filters.Status = &status
	}
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	filters.Offset = (page - 1) * pageSize
	filters.Limit = pageSize
	return filters
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

func staffResponse(staff *domain.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:               staff.ID,
		Name:             staff.Name,
		Position:         staff.Position,
		CourtType:        staff.CourtType,
		CourtID:          staff.CourtID,
		Email:            staff.Email,
		Phone:            staff.Phone,
		Bio:              staff.Bio,
		EmploymentStatus: staff.EmploymentStatus,
		RetirementDate:   staff.RetirementDate,
		DismissalDate:    staff.DismissalDate,
		LeaveStartDate:   staff.LeaveStartDate,
		LeaveEndDate:     staff.LeaveEndDate,
		CreatedAt:        staff.CreatedAt,
		UpdatedAt:        staff.UpdatedAt,
	}
}
