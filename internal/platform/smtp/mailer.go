// Package smtp delivers transactional email through an SMTP relay.
// Delivery is synchronous and has three outcomes: delivered, connection
// failure, or protocol-level rejection. There are no retries; the caller
// decides what a failed delivery means.
package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"github.com/nugomed/nugomed-api/internal/config"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
)

// Mailer errors. Handlers translate all of them to a generic upstream
// failure toward the client; the distinction exists for logging.
var (
	// ErrIncompleteConfig indicates the relay host or credentials are
	// missing from the configuration.
	ErrIncompleteConfig = errors.New("smtp configuration is incomplete")

	// ErrUnsupportedPort indicates the configured port is neither 587
	// (STARTTLS) nor 465 (implicit TLS).
	ErrUnsupportedPort = errors.New("unsupported smtp port")

	// ErrConnect indicates the relay could not be reached or the TLS
	// handshake failed.
	ErrConnect = errors.New("failed to connect to smtp server")

	// ErrRejected indicates the relay answered but rejected the message.
	ErrRejected = errors.New("smtp server rejected the message")
)

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer sends messages through an outbound relay.
type Mailer interface {
	// Send delivers the message synchronously. It returns nil once the
	// relay has accepted the message, ErrConnect if the relay is
	// unreachable, and ErrRejected on a protocol-level refusal.
	Send(ctx context.Context, msg Message) error
}

// RelayMailer implements Mailer over a TLS-secured SMTP connection.
// Port 465 uses implicit TLS; port 587 upgrades via STARTTLS.
type RelayMailer struct {
	cfg config.SMTPConfig
}

// Ensure RelayMailer implements the Mailer interface.
var _ Mailer = (*RelayMailer)(nil)

// NewRelayMailer creates a RelayMailer. Configuration completeness is
// checked at send time so a misconfigured relay fails requests rather than
// startup; the catalogue endpoints work without a relay.
func NewRelayMailer(cfg config.SMTPConfig) *RelayMailer {
	return &RelayMailer{cfg: cfg}
}

// Send implements Mailer.
func (m *RelayMailer) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	if m.cfg.Host == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		log.Error("smtp configuration is incomplete")
		return ErrIncompleteConfig
	}
	if m.cfg.Port != 587 && m.cfg.Port != 465 {
		log.Error("unsupported smtp port", "port", m.cfg.Port)
		return fmt.Errorf("%w: %d", ErrUnsupportedPort, m.cfg.Port)
	}

	if msg.From == "" {
		msg.From = m.cfg.From
	}
	if msg.From == "" {
		msg.From = m.cfg.Username
	}

	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	client, err := m.dial(addr)
	if err != nil {
		log.Error("smtp connection failed",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer func() {
		// Quit also closes the connection; ignore errors after the relay
		// already accepted or refused the message.
		_ = client.Quit()
	}()

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		log.Error("smtp authentication failed",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: auth: %v", ErrRejected, err)
	}

	if err := m.transmit(client, msg); err != nil {
		log.Error("smtp delivery failed",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("email delivered",
		slog.String("subject", msg.Subject))
	return nil
}

// dial opens the connection using the transport matching the configured
// port: implicit TLS on 465, plaintext upgraded with STARTTLS on 587.
func (m *RelayMailer) dial(addr string) (*smtp.Client, error) {
	tlsCfg := &tls.Config{ServerName: m.cfg.Host}

	if m.cfg.Port == 465 {
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return nil, err
		}
		client, err := smtp.NewClient(conn, m.cfg.Host)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		return client, nil
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, err
	}
	if err := client.StartTLS(tlsCfg); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// transmit runs the MAIL/RCPT/DATA sequence. Any refusal from here on is a
// protocol-level rejection, not a connectivity problem.
func (m *RelayMailer) transmit(client *smtp.Client, msg Message) error {
	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrRejected, err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("%w: rcpt to: %v", ErrRejected, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrRejected, err)
	}
	if _, err := w.Write([]byte(FormatMessage(msg))); err != nil {
		_ = w.Close()
		return fmt.Errorf("%w: write: %v", ErrRejected, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrRejected, err)
	}

	return nil
}

// FormatMessage renders the RFC 822 wire form of the message. Header values
// have CR/LF stripped so request input cannot inject extra headers.
func FormatMessage(msg Message) string {
	var b strings.Builder
	b.WriteString("From: " + sanitizeHeader(msg.From) + "\r\n")
	b.WriteString("To: " + sanitizeHeader(msg.To) + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return b.String()
}

func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", "")
	v = strings.ReplaceAll(v, "\n", "")
	return v
}
