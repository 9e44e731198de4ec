// Package monnify implements the payment provider REST client. The wire
// protocol (field names, endpoints) is the vendor contract; everything the
// rest of the service sees goes through internal/pkg/models types and the
// apperrors taxonomy.
package monnify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/database"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
)

const tokenCacheKey = "monnify:access_token"

// tokenCacheMargin is subtracted from the provider's expiry so a cached
// token is never used right at its deadline.
const tokenCacheMargin = 60 * time.Second

// Client is the Monnify API client
type Client struct {
	cfg        models.GatewayConfig
	httpClient *http.Client
	redis      *database.RedisClient
}

// NewClient creates a new provider client. redis may be nil, in which case
// every call performs a fresh login.
func NewClient(cfg models.GatewayConfig, redis *database.RedisClient) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg:   cfg,
		redis: redis,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiEnvelope is the provider's standard response wrapper
type apiEnvelope struct {
	RequestSuccessful bool            `json:"requestSuccessful"`
	ResponseMessage   string          `json:"responseMessage"`
	ResponseCode      string          `json:"responseCode"`
	ResponseBody      json.RawMessage `json:"responseBody"`
}

type loginResponseBody struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// Authenticate exchanges the static API credentials for a bearer token.
// The token is cached in redis for its lifetime minus a safety margin.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if c.redis != nil {
		token, err := c.redis.Get(ctx, tokenCacheKey)
		if err == nil && token != "" {
			return token, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/v1/auth/login", bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Authorization", c.basicAuth())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apperrors.AuthError{Err: err}
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", &apperrors.AuthError{Err: fmt.Errorf("invalid login response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK || !envelope.RequestSuccessful {
		return "", &apperrors.AuthError{Err: fmt.Errorf("provider rejected credentials: %s", envelope.ResponseMessage)}
	}

	var body loginResponseBody
	if err := json.Unmarshal(envelope.ResponseBody, &body); err != nil {
		return "", &apperrors.AuthError{Err: fmt.Errorf("invalid login response body: %w", err)}
	}

	if c.redis != nil && body.ExpiresIn > 0 {
		ttl := time.Duration(body.ExpiresIn)*time.Second - tokenCacheMargin
		if ttl > 0 {
			if err := c.redis.Set(ctx, tokenCacheKey, body.AccessToken, ttl); err != nil {
				logger.Warn("Failed to cache gateway access token", logger.Err(err))
			}
		}
	}

	return body.AccessToken, nil
}

func (c *Client) basicAuth() string {
	credentials := c.cfg.APIKey + ":" + c.cfg.SecretKey
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// doAuthenticated performs an authenticated JSON request against the
// provider and decodes the standard envelope. Transport failures map to
// UnavailableError so callers never mistake a timeout for a settlement.
func (c *Client) doAuthenticated(ctx context.Context, method, path string, payload interface{}) (*apiEnvelope, int, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, 0, err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &apperrors.UnavailableError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		// Some provider error responses carry no JSON body (e.g. 404 on
		// delete). Return the bare status and let the caller decide.
		return &apiEnvelope{}, resp.StatusCode, nil
	}

	return &envelope, resp.StatusCode, nil
}

// gatewayError converts an unsuccessful envelope into a GatewayError
func gatewayError(envelope *apiEnvelope) error {
	code := envelope.ResponseCode
	if code == "" {
		code = "unknown"
	}
	return &apperrors.GatewayError{Code: code, Message: envelope.ResponseMessage}
}
