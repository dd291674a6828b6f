package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/hosteldesk/hosteldesk/errors"
	latepassdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/latepass"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	latepassUsecase "github.com/hosteldesk/hosteldesk/internal/usecase/latepass"
)

// LatePass handles late pass HTTP requests
type LatePass struct {
	latePassService *latepassUsecase.LatePassService
	logger          *zap.Logger
}

// NewLatePassHandler creates a new late pass handler
func NewLatePassHandler(latePassService *latepassUsecase.LatePassService, logger *zap.Logger) *LatePass {
	return &LatePass{
		latePassService: latePassService,
		logger:          logger,
	}
}

// Create handles POST /late-passes
// @Summary      Apply for a late pass
// @Tags         LatePasses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      latepass.CreateLatePassRequest  true  "Late pass application"
// @Success      201      {object}  entities.LatePass  "Application submitted"
// @Failure      400      {object}  errors.AppError  "Validation failed"
// @Router       /late-passes [post]
func (h *LatePass) Create(c echo.Context) error {
	var req latepassdto.CreateLatePassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	departureDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("departure_date must be a date in YYYY-MM-DD format"))
	}

	pass, err := h.latePassService.Create(c.Request().Context(), latepassUsecase.CreateInput{
		UserID:        userID,
		Reason:        req.Reason,
		DepartureDate: departureDate,
		DepartureTime: req.DepartureTime,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, pass)
}

// ListAll handles GET /late-passes
// @Summary      List all late passes
// @Description  Returns every application across users. Admin only.
// @Tags         LatePasses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entities.LatePass  "Late passes"
// @Router       /late-passes [get]
func (h *LatePass) ListAll(c echo.Context) error {
	passes, err := h.latePassService.ListAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, passes)
}

// ListByUser handles GET /late-passes/user/:userId
// @Summary      List a user's late passes
// @Description  Students may only list their own applications; admins may list anyone's.
// @Tags         LatePasses
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "User ID (UUID)"
// @Success      200  {array}   entities.LatePass  "Late passes"
// @Failure      403  {object}  errors.AppError  "Not the caller's late passes"
// @Router       /late-passes/user/{userId} [get]
func (h *LatePass) ListByUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("userId must be a valid UUID"))
	}

	caller, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	if !caller.IsAdmin() && caller.ID != targetID {
		return HandleError(h.logger, c, apperrors.ErrPermissionDenied("viewing another user's late passes"))
	}

	passes, err := h.latePassService.ListByUser(c.Request().Context(), targetID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, passes)
}

// UpdateStatus handles PUT /late-passes/:id/status
// @Summary      Decide a late pass application
// @Description  Approves or rejects a pending application. Decided passes are final. Admin only.
// @Tags         LatePasses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Late pass ID (UUID)"
// @Param        request  body      latepass.UpdateLatePassStatusRequest  true  "New status"
// @Success      200      {object}  entities.LatePass  "Decided late pass"
// @Failure      404      {object}  errors.AppError  "Late pass not found"
// @Failure      409      {object}  errors.AppError  "Late pass already decided"
// @Router       /late-passes/{id}/status [put]
func (h *LatePass) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("id must be a valid UUID"))
	}

	var req latepassdto.UpdateLatePassStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	pass, err := h.latePassService.UpdateStatus(c.Request().Context(), id, entities.LatePassStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, pass)
}
