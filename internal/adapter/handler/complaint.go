package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/hosteldesk/hosteldesk/errors"
	complaintdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/complaint"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	complaintUsecase "github.com/hosteldesk/hosteldesk/internal/usecase/complaint"
)

// Complaint handles complaint HTTP requests
type Complaint struct {
	complaintService *complaintUsecase.ComplaintService
	logger           *zap.Logger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *complaintUsecase.ComplaintService, logger *zap.Logger) *Complaint {
	return &Complaint{
		complaintService: complaintService,
		logger:           logger,
	}
}

// Create handles POST /complaints
// @Summary      File a complaint
// @Tags         Complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      complaint.CreateComplaintRequest  true  "Complaint details"
// @Success      201      {object}  entities.Complaint  "Complaint filed"
// @Failure      400      {object}  errors.AppError  "Validation failed"
// @Router       /complaints [post]
func (h *Complaint) Create(c echo.Context) error {
	var req complaintdto.CreateComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	complaint, err := h.complaintService.Create(c.Request().Context(), complaintUsecase.CreateInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, complaint)
}

// ListAll handles GET /complaints
// @Summary      List all complaints
// @Description  Returns every complaint across users. Admin only.
// @Tags         Complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entities.Complaint  "Complaints"
// @Router       /complaints [get]
func (h *Complaint) ListAll(c echo.Context) error {
	complaints, err := h.complaintService.ListAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, complaints)
}

// ListByUser handles GET /complaints/user/:userId
// @Summary      List a user's complaints
// @Description  Students may only list their own complaints; admins may list anyone's.
// @Tags         Complaints
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "User ID (UUID)"
// @Success      200  {array}   entities.Complaint  "Complaints"
// @Failure      403  {object}  errors.AppError  "Not the caller's complaints"
// @Router       /complaints/user/{userId} [get]
func (h *Complaint) ListByUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("userId must be a valid UUID"))
	}

	caller, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	if !caller.IsAdmin() && caller.ID != targetID {
		return HandleError(h.logger, c, apperrors.ErrPermissionDenied("viewing another user's complaints"))
	}

	complaints, err := h.complaintService.ListByUser(c.Request().Context(), targetID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, complaints)
}

// UpdateStatus handles PUT /complaints/:id/status
// @Summary      Update a complaint's status
// @Description  Moves a complaint along its lifecycle. Resolved complaints are closed. Admin only.
// @Tags         Complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Complaint ID (UUID)"
// @Param        request  body      complaint.UpdateComplaintStatusRequest  true  "New status"
// @Success      200      {object}  entities.Complaint  "Updated complaint"
// @Failure      404      {object}  errors.AppError  "Complaint not found"
// @Failure      409      {object}  errors.AppError  "Complaint already resolved"
// @Router       /complaints/{id}/status [put]
func (h *Complaint) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("id must be a valid UUID"))
	}

	var req complaintdto.UpdateComplaintStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request().Context(), id, entities.ComplaintStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, complaint)
}
