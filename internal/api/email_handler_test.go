package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/smtp"
)

// fakeMailer records messages and returns a configured error.
type fakeMailer struct {
	sent []smtp.Message
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, msg smtp.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func postEmail(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(h, req)
}

const validEmailBody = `{
	"mail_from": "office@nugomed.com",
	"mail_to": "customer@example.com",
	"subject": "Your trip",
	"message": "Your surgery is scheduled."
}`

func TestEmailSend(t *testing.T) {
	t.Parallel()

	t.Run("delivers and records", func(t *testing.T) {
		emails := newMemEmailStore()
		mailer := &fakeMailer{}
		handler := NewEmailHandler(emails, mailer)

		rec := postEmail(handler.Send, validEmailBody)

		require.Equal(t, http.StatusOK, rec.Code)

		var body EmailSendResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Email has been sent", body.Message)
		assert.Equal(t, int64(1), body.EmailID)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "customer@example.com", mailer.sent[0].To)
		require.Len(t, emails.rows, 1)
	})

	t.Run("relay unreachable", func(t *testing.T) {
		emails := newMemEmailStore()
		mailer := &fakeMailer{err: smtp.ErrConnect}
		handler := NewEmailHandler(emails, mailer)

		rec := postEmail(handler.Send, validEmailBody)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		// No audit row for mail that never went out.
		assert.Empty(t, emails.rows)
	})

	t.Run("relay not configured", func(t *testing.T) {
		handler := NewEmailHandler(newMemEmailStore(), &fakeMailer{err: smtp.ErrIncompleteConfig})

		rec := postEmail(handler.Send, validEmailBody)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		mailer := &fakeMailer{}
		handler := NewEmailHandler(newMemEmailStore(), mailer)

		rec := postEmail(handler.Send, `{
			"mail_to": "not-an-email",
			"subject": "x",
			"message": "y"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, mailer.sent)
	})

	t.Run("audit failure still reports success", func(t *testing.T) {
		emails := newMemEmailStore()
		emails.err = assert.AnError
		handler := NewEmailHandler(emails, &fakeMailer{})

		rec := postEmail(handler.Send, validEmailBody)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestEmailList(t *testing.T) {
	t.Parallel()

	emails := newMemEmailStore()
	require.NoError(t, emails.Create(context.Background(), &domain.Email{
		MailFrom: "office@nugomed.com",
		MailTo:   "customer@example.com",
		Subject:  "Your trip",
		Message:  "Details inside.",
	}))
	handler := NewEmailHandler(emails, &fakeMailer{})

	req := httptest.NewRequest(http.MethodGet, "/emails", nil)
	rec := doRequest(handler.List, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body shared.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Result)
}

func TestEmailGet(t *testing.T) {
	t.Parallel()

	emails := newMemEmailStore()
	require.NoError(t, emails.Create(context.Background(), &domain.Email{
		MailFrom: "office@nugomed.com",
		MailTo:   "customer@example.com",
		Subject:  "Your trip",
		Message:  "Details inside.",
	}))
	handler := NewEmailHandler(emails, &fakeMailer{})

	t.Run("found", func(t *testing.T) {
		req := withRouteParams(
			httptest.NewRequest(http.MethodGet, "/emails/1", nil),
			map[string]string{"id": "1"})
		rec := doRequest(handler.Get, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.Email
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Your trip", got.Subject)
	})

	t.Run("not found", func(t *testing.T) {
		req := withRouteParams(
			httptest.NewRequest(http.MethodGet, "/emails/9", nil),
			map[string]string{"id": "9"})
		rec := doRequest(handler.Get, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
