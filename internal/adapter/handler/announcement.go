package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	announcementdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/announcement"
	announcementUsecase "github.com/hosteldesk/hosteldesk/internal/usecase/announcement"
)

// Announcement handles announcement HTTP requests
type Announcement struct {
	announcementService *announcementUsecase.AnnouncementService
	logger              *zap.Logger
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *announcementUsecase.AnnouncementService, logger *zap.Logger) *Announcement {
	return &Announcement{
		announcementService: announcementService,
		logger:              logger,
	}
}

// Create handles POST /announcements
// @Summary      Publish an announcement
// @Description  Publishes a notice to all residents. Admin only.
// @Tags         Announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      announcement.CreateAnnouncementRequest  true  "Announcement"
// @Success      201      {object}  entities.Announcement  "Announcement published"
// @Failure      400      {object}  errors.AppError  "Validation failed"
// @Router       /announcements [post]
func (h *Announcement) Create(c echo.Context) error {
	var req announcementdto.CreateAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	announcement, err := h.announcementService.Create(c.Request().Context(), announcementUsecase.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, announcement)
}

// List handles GET /announcements
// @Summary      List announcements
// @Description  Returns every announcement, newest first.
// @Tags         Announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entities.Announcement  "Announcements"
// @Router       /announcements [get]
func (h *Announcement) List(c echo.Context) error {
	announcements, err := h.announcementService.ListAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, announcements)
}
