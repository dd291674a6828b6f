package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/hosteldesk/hosteldesk/errors"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// currentUserID reads the authenticated user's ID set by the auth middleware
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// currentUser reads the authenticated user set by the auth middleware
func currentUser(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get("user").(*entities.User)
	return user, ok
}

// mapError translates use case errors into transport errors. Anything it
// does not recognize becomes an internal server error.
func mapError(err error) apperrors.AppError {
	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	// Auth
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return apperrors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid),
		stdErrors.Is(err, usecaseErrors.ErrSessionNotFound),
		stdErrors.Is(err, usecaseErrors.ErrSessionExpired):
		return apperrors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrUserNotFound),
		stdErrors.Is(err, usecaseErrors.ErrUserNotActive),
		stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return apperrors.ErrUnauthenticated()
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		return apperrors.ErrPermissionDenied("insufficient role")
	case stdErrors.Is(err, usecaseErrors.ErrEmailAlreadyUsed):
		return apperrors.ErrConflict("Email already in use")

	// Validation
	case stdErrors.Is(err, usecaseErrors.ErrMissingRequiredField),
		stdErrors.Is(err, usecaseErrors.ErrTooManyMembers),
		stdErrors.Is(err, usecaseErrors.ErrInvalidMemberEmail),
		stdErrors.Is(err, usecaseErrors.ErrInvalidDecisionStatus),
		stdErrors.Is(err, usecaseErrors.ErrIncompleteAdminResponse),
		stdErrors.Is(err, usecaseErrors.ErrInvalidComplaintStatus),
		stdErrors.Is(err, usecaseErrors.ErrInvalidReceiptStatus),
		stdErrors.Is(err, usecaseErrors.ErrInvalidLatePassStatus):
		return apperrors.ErrInvalidArgument(err.Error())

	// Room requests
	case stdErrors.Is(err, usecaseErrors.ErrRequestNotFound):
		return apperrors.ErrRequestNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrRequestAlreadyDecided):
		return apperrors.ErrRequestAlreadyDecided("")
	case stdErrors.Is(err, usecaseErrors.ErrActiveRequestExists):
		return apperrors.ErrDuplicateActiveRequest()

	// Facility lifecycles
	case stdErrors.Is(err, usecaseErrors.ErrComplaintNotFound):
		return apperrors.ErrNotFound("Complaint")
	case stdErrors.Is(err, usecaseErrors.ErrReceiptNotFound):
		return apperrors.ErrNotFound("Receipt")
	case stdErrors.Is(err, usecaseErrors.ErrLatePassNotFound):
		return apperrors.ErrNotFound("Late pass")
	case stdErrors.Is(err, usecaseErrors.ErrComplaintAlreadyResolved),
		stdErrors.Is(err, usecaseErrors.ErrReceiptAlreadyReviewed),
		stdErrors.Is(err, usecaseErrors.ErrLatePassAlreadyDecided):
		return apperrors.ErrConflict(err.Error())

	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return apperrors.ErrNotFound("Resource")
	case stdErrors.Is(err, usecaseErrors.ErrConflict):
		return apperrors.ErrConflict(err.Error())
	}

	return apperrors.ErrInternal(err)
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := mapError(err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	return c.JSON(appErr.HTTPCode, appErr)
}

// bindAndValidate decodes the JSON body and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidArgument("Malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return apperrors.ErrInvalidArgument(err.Error())
	}
	return nil
}

// requireUserID resolves the caller or fails with 401
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := currentUserID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return userID, nil
}
