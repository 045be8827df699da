package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dailyink/blog-backend/config"
	"github.com/dailyink/blog-backend/errs"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactMailer delivers contact-form submissions to the site owner via the
// Resend API.
//
// Required configuration:
//   - RESEND_API_KEY: Resend API key
//   - RESEND_FROM_EMAIL: sender address (e.g. "Blog <contact@example.com>")
//   - CONTACT_RECEIVER: address the contact messages land in
type ContactMailer struct {
	apiKey   string
	from     string
	receiver string
	client   *http.Client
	logger   zerolog.Logger
}

func NewContactMailer(cfg map[string]string) *ContactMailer {
	return &ContactMailer{
		apiKey:   config.GetString(cfg, "RESEND_API_KEY", ""),
		from:     config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		receiver: config.GetString(cfg, "CONTACT_RECEIVER", ""),
		client:   &http.Client{},
		logger:   log.With().Str("serviceName", "contactMailer").Logger(),
	}
}

// Send forwards a contact-form submission as a plain-text email.
func (m *ContactMailer) Send(name, email, phone, message string) error {
	if m.apiKey == "" || m.from == "" || m.receiver == "" {
		return errs.NewEmailDeliveryError(fmt.Errorf("contact mailer is not configured"))
	}

	body := fmt.Sprintf("Hi this is %s.%s \nYou can also contact me on %s or at %s", name, message, phone, email)

	payload := ResendEmailRequest{
		From:    m.from,
		To:      []string{m.receiver},
		Subject: fmt.Sprintf("Message from %s", name),
		Text:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errs.NewEmailDeliveryError(fmt.Errorf("failed to marshal email payload: %w", err))
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return errs.NewEmailDeliveryError(fmt.Errorf("failed to create Resend API request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.NewEmailDeliveryError(fmt.Errorf("failed to send request to Resend API: %w", err))
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewEmailDeliveryError(fmt.Errorf("failed to read Resend API response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewEmailDeliveryError(fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message))
		}
		return errs.NewEmailDeliveryError(fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes)))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		m.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent contact email via Resend")
	}

	return nil
}
