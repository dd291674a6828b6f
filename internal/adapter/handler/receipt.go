package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/hosteldesk/hosteldesk/errors"
	receiptdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/receipt"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	receiptUsecase "github.com/hosteldesk/hosteldesk/internal/usecase/receipt"
)

// Receipt handles payment receipt HTTP requests
type Receipt struct {
	receiptService *receiptUsecase.ReceiptService
	logger         *zap.Logger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *receiptUsecase.ReceiptService, logger *zap.Logger) *Receipt {
	return &Receipt{
		receiptService: receiptService,
		logger:         logger,
	}
}

// Create handles POST /receipts
// @Summary      Submit a payment receipt
// @Tags         Receipts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      receipt.CreateReceiptRequest  true  "Receipt details"
// @Success      201      {object}  entities.Receipt  "Receipt submitted"
// @Failure      400      {object}  errors.AppError  "Validation failed"
// @Router       /receipts [post]
func (h *Receipt) Create(c echo.Context) error {
	var req receiptdto.CreateReceiptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	paidOn, err := time.Parse("2006-01-02", req.PaidOn)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("paid_on must be a date in YYYY-MM-DD format"))
	}

	receipt, err := h.receiptService.Create(c.Request().Context(), receiptUsecase.CreateInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		AmountCents: req.AmountCents,
		PaidOn:      paidOn,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, receipt)
}

// ListAll handles GET /receipts
// @Summary      List all receipts
// @Description  Returns every submitted receipt across users. Admin only.
// @Tags         Receipts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entities.Receipt  "Receipts"
// @Router       /receipts [get]
func (h *Receipt) ListAll(c echo.Context) error {
	receipts, err := h.receiptService.ListAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, receipts)
}

// ListByUser handles GET /receipts/user/:userId
// @Summary      List a user's receipts
// @Description  Students may only list their own receipts; admins may list anyone's.
// @Tags         Receipts
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "User ID (UUID)"
// @Success      200  {array}   entities.Receipt  "Receipts"
// @Failure      403  {object}  errors.AppError  "Not the caller's receipts"
// @Router       /receipts/user/{userId} [get]
func (h *Receipt) ListByUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("userId must be a valid UUID"))
	}

	caller, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	if !caller.IsAdmin() && caller.ID != targetID {
		return HandleError(h.logger, c, apperrors.ErrPermissionDenied("viewing another user's receipts"))
	}

	receipts, err := h.receiptService.ListByUser(c.Request().Context(), targetID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, receipts)
}

// UpdateStatus handles PUT /receipts/:id/status
// @Summary      Review a receipt
// @Description  Approves or rejects a pending receipt. Reviewed receipts are final. Admin only.
// @Tags         Receipts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Receipt ID (UUID)"
// @Param        request  body      receipt.UpdateReceiptStatusRequest  true  "New status"
// @Success      200      {object}  entities.Receipt  "Reviewed receipt"
// @Failure      404      {object}  errors.AppError  "Receipt not found"
// @Failure      409      {object}  errors.AppError  "Receipt already reviewed"
// @Router       /receipts/{id}/status [put]
func (h *Receipt) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("id must be a valid UUID"))
	}

	var req receiptdto.UpdateReceiptStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	receipt, err := h.receiptService.UpdateStatus(c.Request().Context(), id, entities.ReceiptStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, receipt)
}
