package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/layer-3/gatecheck/core"
	"github.com/layer-3/gatecheck/ports"
)

// DefaultVerifyURL is the Google reCAPTCHA siteverify endpoint. Other
// providers (hCaptcha, Turnstile) speak the same secret/response form
// protocol and can be selected via configuration.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// httpVerifier is the production implementation of the Verifier interface
type httpVerifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// NewHTTPVerifier creates a verifier for a siteverify-compatible endpoint.
// An empty verifyURL selects the Google endpoint. A missing secret is a
// configuration error and is rejected here, before any call is made.
func NewHTTPVerifier(secret, verifyURL string) (ports.Verifier, error) {
	if secret == "" {
		return nil, core.ErrMissingSecret
	}
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &httpVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify issues the single outbound verification call for a token
func (v *httpVerifier) Verify(ctx context.Context, token string) (bool, error) {
	formData := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call verify api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("verify api returned status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode verify response: %w", err)
	}

	return body.Success, nil
}
