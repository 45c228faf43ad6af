package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/jwt-keychain/internal/config"
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/models"
	"github.com/go-resty/resty/v2"
)

const defaultRelayTimeout = 10 * time.Second

// relayMessage is the wire format of the relay's POST /messages endpoint.
type relayMessage struct {
	From    relayParty   `json:"from"`
	To      []relayParty `json:"to"`
	Subject string       `json:"subject"`
	Text    string       `json:"text"`
}

type relayParty struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

// mailRelayAdapter is the HTTP implementation of [Mailer]. It talks to an
// external transactional-mail relay over REST and renders the reset link
// from the configured public base URL.
type mailRelayAdapter struct {
	client       *resty.Client
	from         relayParty
	resetBaseURL string
	logger       *logger.Logger
}

// NewMailRelayAdapter constructs an HTTP [Mailer] from the mail relay
// configuration. It normalises and validates the relay base URL and the
// public reset base URL, and configures the underlying resty client with the
// relay API key and request timeout.
func NewMailRelayAdapter(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("%w: relay url: %v", ErrInvalidMailConfig, err)
	}
	if cfg.FromAddress == "" {
		return nil, fmt.Errorf("%w: from address is empty", ErrInvalidMailConfig)
	}
	if _, err := url.Parse(cfg.ResetBaseURL); err != nil || cfg.ResetBaseURL == "" {
		return nil, fmt.Errorf("%w: reset base url %q", ErrInvalidMailConfig, cfg.ResetBaseURL)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRelayTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey)

	return &mailRelayAdapter{
		client:       client,
		from:         relayParty{Name: cfg.FromName, Address: cfg.FromAddress},
		resetBaseURL: strings.TrimRight(cfg.ResetBaseURL, "/"),
		logger:       log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendPasswordReset implements [Mailer]. It POSTs a plain-text reset message
// to the relay's /messages endpoint. The message body carries a single link
// with the signed reset token as a query parameter.
//
// Any non-2xx relay response or transport failure is wrapped in
// [ErrMailDelivery]; the token itself is never logged.
func (m *mailRelayAdapter) SendPasswordReset(ctx context.Context, to models.EmailAddress, resetToken string) error {
	log := logger.FromContext(ctx)

	resetLink := m.resetBaseURL + "?token=" + url.QueryEscape(resetToken)

	msg := relayMessage{
		From:    m.from,
		To:      []relayParty{{Name: to.Name, Address: to.Address}},
		Subject: "Reset your password",
		Text: "Hi " + firstNonEmpty(to.Name, "there") + ",\n\n" +
			"We received a request to reset the password for your account.\n" +
			"Follow the link below to choose a new password:\n\n" +
			resetLink + "\n\n" +
			"If you did not request this, you can safely ignore this message.\n",
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/messages")
	if err != nil {
		log.Err(err).Str("func", "*mailRelayAdapter.SendPasswordReset").Msg("mail relay request failed")
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*mailRelayAdapter.SendPasswordReset").Int("status", resp.StatusCode()).Msg("mail relay rejected message")
		return fmt.Errorf("%w: relay returned %d", ErrMailDelivery, resp.StatusCode())
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
