package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clientportal/internal/adapter/http/validation"
	"clientportal/internal/logger"
	"clientportal/internal/usecase"
	"clientportal/pkg"
)

var errMissingID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "id is required", http.StatusBadRequest)

// specificErrors maps domain errors that deserve their own code. Anything not
// listed falls back to its class in mapError.
var specificErrors = []struct {
	err    error
	code   string
	status int
}{
	{usecase.ErrProposalNotFound, "PROPOSAL_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrInvalidStatusTransition, "INVALID_STATUS_TRANSITION", http.StatusConflict},
	{usecase.ErrTemplateNotFound, "TEMPLATE_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrBuiltInTemplateReadOnly, "TEMPLATE_READ_ONLY", http.StatusForbidden},
	{usecase.ErrTemplateAlreadyExists, "TEMPLATE_ALREADY_EXISTS", http.StatusConflict},
	{usecase.ErrQuestionnaireNotFound, "QUESTIONNAIRE_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrQuestionnaireExpired, "QUESTIONNAIRE_EXPIRED", http.StatusGone},
	{usecase.ErrQuestionnaireCompleted, "QUESTIONNAIRE_COMPLETED", http.StatusConflict},
	{usecase.ErrMissingRequiredResponses, "MISSING_REQUIRED_RESPONSES", http.StatusBadRequest},
	{usecase.ErrClientNotFound, "CLIENT_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrPortalNotFound, "PORTAL_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrClientEmailRequired, "CLIENT_EMAIL_REQUIRED", http.StatusBadRequest},
	{usecase.ErrClientEmailConflict, "CLIENT_EMAIL_CONFLICT", http.StatusConflict},
	{usecase.ErrAlreadyHasPortal, "CLIENT_HAS_PORTAL", http.StatusConflict},
	{usecase.ErrPortalInactive, "PORTAL_INACTIVE", http.StatusForbidden},
	{usecase.ErrContentNotFound, "CONTENT_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrContentFileNotFound, "FILE_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrInvalidTrackingTarget, "INVALID_TRACKING_TARGET", http.StatusBadRequest},
	{usecase.ErrInvalidWebhookSignature, "INVALID_SIGNATURE", http.StatusUnauthorized},
	{usecase.ErrPaymentLookupFailed, "PAYMENT_PROVIDER_ERROR", http.StatusBadGateway},
	{usecase.ErrCRMFailure, "CRM_ERROR", http.StatusBadGateway},
	{usecase.ErrInvalidCredentials, "INVALID_CREDENTIALS", http.StatusUnauthorized},
	{usecase.ErrInvalidSession, "UNAUTHORIZED", http.StatusUnauthorized},
}

var classErrors = []struct {
	err    error
	code   string
	status int
}{
	{usecase.ErrValidation, "INVALID_REQUEST", http.StatusBadRequest},
	{usecase.ErrUnauthorized, "UNAUTHORIZED", http.StatusUnauthorized},
	{usecase.ErrForbidden, "FORBIDDEN", http.StatusForbidden},
	{usecase.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
	{usecase.ErrConflict, "CONFLICT", http.StatusConflict},
	{usecase.ErrExpired, "EXPIRED", http.StatusGone},
	{usecase.ErrUpstreamFailure, "UPSTREAM_ERROR", http.StatusBadGateway},
}

func mapError(err error) *pkg.AppError {
	for _, m := range specificErrors {
		if errors.Is(err, m.err) {
			return pkg.NewDomainError(m.code, err.Error(), err, m.status)
		}
	}
	for _, m := range classErrors {
		if errors.Is(err, m.err) {
			return pkg.NewDomainError(m.code, err.Error(), err, m.status)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// writeError logs server-side failures and writes the mapped error body.
func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromContext(c).Error("[http][handler] request failed", zap.Int("status", appErr.HTTPStatus), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// writeBindError reports a body that failed to decode or validate.
func writeBindError(c *gin.Context, err error) {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request payload", err, http.StatusBadRequest).
		WithDetails(validation.FieldErrors(err))
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
