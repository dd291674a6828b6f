package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/hosteldesk/hosteldesk/errors"
	rrdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/roomrequest"
	"github.com/hosteldesk/hosteldesk/internal/adapter/presenter"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	rrUsecase "github.com/hosteldesk/hosteldesk/internal/usecase/roomrequest"
)

// RoomRequest handles room request HTTP requests
type RoomRequest struct {
	requestService rrUsecase.Service
	logger         *zap.Logger
}

// NewRoomRequestHandler creates a new room request handler
func NewRoomRequestHandler(requestService rrUsecase.Service, logger *zap.Logger) *RoomRequest {
	return &RoomRequest{
		requestService: requestService,
		logger:         logger,
	}
}

// Create handles POST /room-requests
// @Summary      Submit a room request
// @Description  Files a new accommodation request for the authenticated student
// @Tags         RoomRequests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      roomrequest.CreateRoomRequestRequest  true  "Request details"
// @Success      201      {object}  roomrequest.RoomRequestResponse  "Request submitted"
// @Failure      400      {object}  errors.AppError  "Validation failed"
// @Failure      409      {object}  errors.AppError  "An active request already exists"
// @Router       /room-requests [post]
func (h *RoomRequest) Create(c echo.Context) error {
	var req rrdto.CreateRoomRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	request, err := h.requestService.Create(c.Request().Context(), rrUsecase.CreateInput{
		UserID:  userID,
		Faculty: req.Faculty,
		Batch:   req.Batch,
		Members: req.Members,
		Reason:  req.Reason,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, presenter.ToRoomRequestResponse(request))
}

// Decide handles PUT /room-requests/approval
// @Summary      Decide a room request
// @Description  Accepts or rejects a pending request. Acceptance requires a complete allocation. Admin only.
// @Tags         RoomRequests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      roomrequest.DecideRoomRequestRequest  true  "Decision"
// @Success      200      {object}  roomrequest.RoomRequestResponse  "Decided request"
// @Failure      400      {object}  errors.AppError  "Validation failed"
// @Failure      404      {object}  errors.AppError  "Request not found"
// @Failure      409      {object}  errors.AppError  "Request already decided"
// @Router       /room-requests/approval [put]
func (h *RoomRequest) Decide(c echo.Context) error {
	var req rrdto.DecideRoomRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	requestID, err := uuid.Parse(req.ID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("id must be a valid UUID"))
	}

	adminID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var response *entities.AdminResponse
	if req.AdminResponse != nil {
		response = &entities.AdminResponse{
			Block:      req.AdminResponse.Block,
			Floor:      req.AdminResponse.Floor,
			RoomNumber: req.AdminResponse.RoomNumber,
			Comments:   req.AdminResponse.Comments,
		}
	}

	request, decideErr := h.requestService.Decide(c.Request().Context(), rrUsecase.DecideInput{
		RequestID:     requestID,
		Status:        entities.RequestStatus(req.Status),
		AdminResponse: response,
		DecidedBy:     adminID,
	})
	if decideErr != nil {
		appErr := mapError(decideErr)
		return HandleError(h.logger, c, appErr.WithDetail("request_id", req.ID))
	}

	return c.JSON(http.StatusOK, presenter.ToRoomRequestResponse(request))
}

// ListPending handles GET /room-requests/admin
// @Summary      List pending room requests
// @Description  Returns pending requests in submission order. Admin only.
// @Tags         RoomRequests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roomrequest.RoomRequestListResponse  "Pending requests"
// @Router       /room-requests/admin [get]
func (h *RoomRequest) ListPending(c echo.Context) error {
	requests, err := h.requestService.ListPending(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToRoomRequestListResponse(requests))
}

// ListAccepted handles GET /room-requests/accepted
// @Summary      List accepted room requests
// @Tags         RoomRequests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roomrequest.RoomRequestListResponse  "Accepted requests"
// @Router       /room-requests/accepted [get]
func (h *RoomRequest) ListAccepted(c echo.Context) error {
	requests, err := h.requestService.ListAccepted(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToRoomRequestListResponse(requests))
}

// ListByUser handles GET /room-requests/user/:userId
// @Summary      List a user's room requests
// @Description  Students may only view their own requests; admins may view any user's.
// @Tags         RoomRequests
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID (UUID)"
// @Success      200     {object}  roomrequest.RoomRequestListResponse  "User's requests"
// @Failure      403     {object}  errors.AppError  "Viewing another user's requests"
// @Router       /room-requests/user/{userId} [get]
func (h *RoomRequest) ListByUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("userId must be a valid UUID"))
	}

	caller, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	if !caller.IsAdmin() && caller.ID != targetID {
		return HandleError(h.logger, c, apperrors.ErrPermissionDenied("viewing another user's requests"))
	}

	requests, err := h.requestService.ListByRequester(c.Request().Context(), targetID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToRoomRequestListResponse(requests))
}

// ListAll handles GET /room-requests
// @Summary      List all room requests
// @Description  Returns every request regardless of status. Admin only.
// @Tags         RoomRequests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roomrequest.RoomRequestListResponse  "All requests"
// @Router       /room-requests [get]
func (h *RoomRequest) ListAll(c echo.Context) error {
	requests, err := h.requestService.ListAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToRoomRequestListResponse(requests))
}
