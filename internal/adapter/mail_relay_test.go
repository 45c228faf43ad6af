// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/jwt-keychain/internal/config"
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, relayURL string) Mailer {
	t.Helper()
	cfg := config.Mail{
		RelayURL:       relayURL,
		APIKey:         "relay-api-key",
		FromName:       "Auth Service",
		FromAddress:    "no-reply@example.com",
		ResetBaseURL:   "https://app.example.com/reset-password",
		RequestTimeout: 5 * time.Second,
	}

	m, err := NewMailRelayAdapter(cfg, logger.NewLogger("test"))
	require.NoError(t, err)
	return m
}

// ── SendPasswordReset ───────────────────────────────────────────────────────

func TestSendPasswordReset_Success(t *testing.T) {
	var got relayMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "Bearer relay-api-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := newTestMailer(t, srv.URL)
	to := models.EmailAddress{Name: "Alice", Address: "alice@example.com"}

	err := m.SendPasswordReset(context.Background(), to, "signed.reset.token")

	require.NoError(t, err)
	assert.Equal(t, "no-reply@example.com", got.From.Address)
	require.Len(t, got.To, 1)
	assert.Equal(t, "alice@example.com", got.To[0].Address)
	assert.Contains(t, got.Text, "https://app.example.com/reset-password?token=signed.reset.token")
	assert.Contains(t, got.Text, "Hi Alice")
}

func TestSendPasswordReset_TokenIsQueryEscaped(t *testing.T) {
	var got relayMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := newTestMailer(t, srv.URL)

	err := m.SendPasswordReset(context.Background(), models.EmailAddress{Address: "a@b.c"}, "a+b/c=")

	require.NoError(t, err)
	assert.Contains(t, got.Text, "?token=a%2Bb%2Fc%3D")
}

func TestSendPasswordReset_RelayRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := newTestMailer(t, srv.URL)

	err := m.SendPasswordReset(context.Background(), models.EmailAddress{Address: "a@b.c"}, "tok")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMailDelivery))
	assert.Contains(t, err.Error(), "502")
}

func TestSendPasswordReset_RelayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	m := newTestMailer(t, srv.URL)

	err := m.SendPasswordReset(context.Background(), models.EmailAddress{Address: "a@b.c"}, "tok")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMailDelivery))
}

// ── NewMailRelayAdapter validation ──────────────────────────────────────────

func TestNewMailRelayAdapter_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Mail)
	}{
		{"empty relay url", func(c *config.Mail) { c.RelayURL = "" }},
		{"empty from address", func(c *config.Mail) { c.FromAddress = "" }},
		{"empty reset base url", func(c *config.Mail) { c.ResetBaseURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Mail{
				RelayURL:     "http://relay.local",
				APIKey:       "key",
				FromAddress:  "no-reply@example.com",
				ResetBaseURL: "https://app.example.com/reset-password",
			}
			tt.mutate(&cfg)

			_, err := NewMailRelayAdapter(cfg, logger.NewLogger("test"))

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMailConfig))
		})
	}
}

func TestNormalizeBaseURL_AddsScheme(t *testing.T) {
	got, err := normalizeBaseURL("relay.local:8080")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "http://"))
}
