package usecase

import (
	"errors"
	"fmt"
)

// Error classes. Every domain error below wraps exactly one of them so the
// HTTP layer can map by class with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrExpired         = errors.New("expired")
	ErrUpstreamFailure = errors.New("upstream failure")
	ErrUnauthorized    = errors.New("unauthorized")
)

func classed(class error, msg string) error {
	return fmt.Errorf("%s: %w", msg, class)
}

var (
	ErrProposalNotFound        = classed(ErrNotFound, "proposal not found")
	ErrInvalidProposal         = classed(ErrValidation, "invalid proposal")
	ErrInvalidStatusTransition = classed(ErrConflict, "invalid proposal status transition")

	ErrTemplateNotFound         = classed(ErrNotFound, "template not found")
	ErrInvalidTemplate          = classed(ErrValidation, "invalid template")
	ErrBuiltInTemplateReadOnly  = classed(ErrForbidden, "built-in templates are read-only")
	ErrTemplateAlreadyExists    = classed(ErrConflict, "template already exists")
	ErrQuestionnaireNotFound    = classed(ErrNotFound, "questionnaire not found")
	ErrInvalidQuestionnaire     = classed(ErrValidation, "invalid questionnaire")
	ErrQuestionnaireExpired     = classed(ErrExpired, "questionnaire expired")
	ErrQuestionnaireCompleted   = classed(ErrConflict, "questionnaire already completed")
	ErrMissingRequiredResponses = classed(ErrValidation, "required questions unanswered")

	ErrClientNotFound      = classed(ErrNotFound, "client not found")
	ErrPortalNotFound      = classed(ErrNotFound, "portal not found")
	ErrInvalidClient       = classed(ErrValidation, "invalid client")
	ErrClientEmailRequired = classed(ErrValidation, "client email is required")
	ErrClientEmailConflict = classed(ErrConflict, "a client with this email already exists")
	ErrAlreadyHasPortal    = classed(ErrConflict, "client already has a portal")
	ErrPortalInactive      = classed(ErrForbidden, "portal is inactive")

	ErrInvalidContent      = classed(ErrValidation, "invalid content item")
	ErrContentNotFound     = classed(ErrNotFound, "content item not found")
	ErrContentFileNotFound = classed(ErrNotFound, "content file not found")

	ErrInvalidTrackingTarget = classed(ErrValidation, "invalid tracking target")

	ErrInvalidWebhookSignature = classed(ErrUnauthorized, "invalid webhook signature")
	ErrInvalidWebhookPayload   = classed(ErrValidation, "invalid webhook payload")
	ErrPaymentLookupFailed     = classed(ErrUpstreamFailure, "payment provider lookup failed")

	ErrInvalidLead = classed(ErrValidation, "invalid lead")
	ErrCRMFailure  = classed(ErrUpstreamFailure, "crm request failed")

	ErrInvalidCredentials = classed(ErrUnauthorized, "invalid credentials")
	ErrInvalidSession     = classed(ErrUnauthorized, "invalid session")
)

// invalid attaches a field-level reason to a validation sentinel.
func invalid(sentinel error, reason string) error {
	return fmt.Errorf("%w: %s", sentinel, reason)
}
