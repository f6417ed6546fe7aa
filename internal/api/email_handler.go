package api

import (
	"errors"
	"net/http"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/platform/smtp"
	"github.com/nugomed/nugomed-api/internal/redact"
	"github.com/nugomed/nugomed-api/internal/store"
)

// EmailHandler serves the transactional-email endpoints: synchronous
// delivery plus the audit log of accepted messages.
type EmailHandler struct {
	emails store.EmailStore
	mailer smtp.Mailer
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(emails store.EmailStore, mailer smtp.Mailer) *EmailHandler {
	return &EmailHandler{
		emails: emails,
		mailer: mailer,
	}
}

// Send handles POST /send-email. Delivery happens inline; the email row is
// written only after the relay accepts the message, so the log never lists
// mail that was not sent.
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req EmailSendRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	msg := smtp.Message{
		From:    req.MailFrom,
		To:      req.MailTo,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := h.mailer.Send(r.Context(), msg); err != nil {
		switch {
		case errors.Is(err, smtp.ErrIncompleteConfig),
			errors.Is(err, smtp.ErrUnsupportedPort):
			shared.RespondWithErrorAndLog(w, r,
				http.StatusInternalServerError, "Email service is not configured", err)
		case errors.Is(err, smtp.ErrConnect):
			shared.RespondWithErrorAndLog(w, r,
				http.StatusBadGateway, "Email service unavailable", err)
		default:
			shared.RespondWithErrorAndLog(w, r,
				http.StatusBadGateway, "Email was not accepted for delivery", err)
		}
		return
	}

	email := &domain.Email{
		MailFrom: req.MailFrom,
		MailTo:   req.MailTo,
		Subject:  req.Subject,
		Message:  req.Message,
	}
	if err := h.emails.Create(r.Context(), email); err != nil {
		// Delivery already happened; report success but flag the missing
		// audit row loudly.
		log.Error("email delivered but audit record failed",
			"error", redact.Error(err))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EmailSendResponse{
		Message: "Email has been sent",
		EmailID: email.ID,
	})
}

// List handles GET /emails, the audit log of delivered messages.
func (h *EmailHandler) List(w http.ResponseWriter, r *http.Request) {
	emails, err := h.emails.List(r.Context(), pageFromQuery(r))
	if err != nil {
		respondStoreError(w, r, err, "Email not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewListResponse(len(emails), emails))
}

// Get handles GET /emails/{id}.
func (h *EmailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid email ID")
		return
	}

	email, err := h.emails.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Email not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, email)
}
