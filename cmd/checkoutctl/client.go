package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	reqdto "checkout-orchestrator/internal/handler/dto/request"
	resdto "checkout-orchestrator/internal/handler/dto/response"
	"checkout-orchestrator/internal/handler/httperr"
)

type apiError struct {
	Status int
	Body   httperr.Response
}

func (e *apiError) Error() string {
	if e.Body.Error == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Body.Error)
}

type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type createResult struct {
	RedirectURL string
	Replayed    bool
}

func (c *apiClient) CreateSession(ctx context.Context, body reqdto.CheckoutSessionRequest, idempotencyKey string) (*createResult, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-checkout-session", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}

	return &createResult{
		RedirectURL: strings.TrimSpace(string(raw)),
		Replayed:    resp.Header.Get("Idempotent-Replayed") == "true",
	}, nil
}

func (c *apiClient) SessionStatus(ctx context.Context, sessionID string) (*resdto.CheckoutSessionStatusResponse, error) {
	u := c.baseURL + "/success?" + url.Values{"session_id": {sessionID}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch session status: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}

	var status resdto.CheckoutSessionStatusResponse
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("decode session status: %w", err)
	}
	return &status, nil
}

func decodeAPIError(status int, raw []byte) error {
	e := &apiError{Status: status}
	_ = json.Unmarshal(raw, &e.Body)
	return e
}
