package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-back/internal/apperrors"
	"portfolio-back/internal/model"
	"portfolio-back/internal/service"
)

// Fixed response texts. These are part of the public contract consumed by the
// frontend, do not reword them.
const (
	msgContactSaved = "Contact message saved successfully."

	errFieldsRequired  = "Name, email, and message are required."
	errSaveFailed      = "Failed to save contact message."
	errInvalidPasscode = "Unauthorized: Invalid passcode."
	errFetchFailed     = "Failed to fetch contacts."
)

type ContactService interface {
	Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error)
	ListAll(ctx context.Context) ([]model.ContactMessage, error)
}

type ContactHandler struct {
	log      *zap.Logger
	svc      ContactService
	passcode service.PasscodeVerifier
}

func NewContactHandler(log *zap.Logger, svc ContactService, passcode service.PasscodeVerifier) *ContactHandler {
	return &ContactHandler{
		log:      log,
		svc:      svc,
		passcode: passcode,
	}
}

// Submit
// @Summary Submit a contact message.
// @Description Validates that name, email and message are present and appends one immutable record to the store. The created record is not echoed back.
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body model.SubmitContactRequest true "Contact form fields"
// @Success 201 {object} MessageResponse "Message saved"
// @Failure 400 {object} ErrorResponse "A required field is empty or absent"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	// A body that does not decode carries no usable fields, so it gets the
	// same fixed rejection as a missing field.
	var req model.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: errFieldsRequired,
		})
		return
	}

	if v := service.ValidateSubmission(&req); !v.OK {
		h.log.Debug("Contact submission rejected", zap.String("missing_field", string(v.Missing)))

		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: errFieldsRequired,
		})
		return
	}

	if _, err := h.svc.Submit(ctx, &req); err != nil {
		h.log.Error("Failed to save contact message", zap.Error(err))

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: errSaveFailed,
		})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{
		Message: msgContactSaved,
	})
}

// AdminList
// @Summary List all contact messages.
// @Description Returns every stored message, newest first, when the passcode query parameter matches the configured admin secret.
// @Tags Contact
// @Produce json
// @Param passcode query string true "Admin shared secret"
// @Success 200 {array} model.ContactMessage "All records, newest first"
// @Failure 401 {object} ErrorResponse "Wrong or missing passcode"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /contact/admin [get]
func (h *ContactHandler) AdminList(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.passcode.Verify(c.Query(PasscodeQueryParam)); err != nil {
		if errors.Is(err, apperrors.ErrPasscodeNotConfigured) {
			h.log.Warn("Admin listing requested but no passcode is configured")
		}

		// Every rejection looks the same to the caller.
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: errInvalidPasscode,
		})
		return
	}

	contacts, err := h.svc.ListAll(ctx)
	if err != nil {
		h.log.Error("Failed to fetch contacts", zap.Error(err))

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: errFetchFailed,
		})
		return
	}

	// The dashboard iterates the response, so an empty store answers with []
	// rather than null.
	if contacts == nil {
		contacts = []model.ContactMessage{}
	}

	c.JSON(http.StatusOK, contacts)
}
