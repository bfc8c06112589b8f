// Package client is a small Go client for the gemquest REST API. It
// attaches the stored bearer token to every call and transparently
// refreshes it once when the server answers 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrUnauthorized = errors.New("unauthorized")

type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
}

func New(baseURL string, creds CredentialStore) *Client {
	if creds == nil {
		creds = NewMemoryCredentialStore()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		creds:   creds,
	}
}

// envelope mirrors the server's APIResponse wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}

	// One-shot refresh on 401, then replay the original request.
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if err := c.refresh(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, payload)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if env.Status != "success" {
		return fmt.Errorf("api error (http %d): %s", resp.StatusCode, env.Message)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if pair, ok := c.creds.Get(); ok && pair.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}
	return c.http.Do(req)
}

func (c *Client) refresh(ctx context.Context) error {
	pair, ok := c.creds.Get()
	if !ok || pair.RefreshToken == "" {
		return ErrUnauthorized
	}

	payload, _ := json.Marshal(map[string]string{"refreshToken": pair.RefreshToken})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/refresh-token", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.creds.Clear()
		return ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	var data struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.AccessToken == "" {
		c.creds.Clear()
		return ErrUnauthorized
	}

	pair.AccessToken = data.AccessToken
	c.creds.Set(pair)
	return nil
}

// --- Typed endpoints ---

type LoginResult struct {
	Success bool `json:"success"`
	User    struct {
		AccessToken  string          `json:"accessToken"`
		RefreshToken string          `json:"refreshToken"`
		User         json.RawMessage `json:"user"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/user/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.creds.Set(TokenPair{
		AccessToken:  out.User.AccessToken,
		RefreshToken: out.User.RefreshToken,
	})
	return &out, nil
}

func (c *Client) GetFamily(ctx context.Context, userID string, out any) error {
	return c.do(ctx, http.MethodGet, "/user/family/"+userID, nil, out)
}

func (c *Client) CreateChore(ctx context.Context, body any, out any) error {
	return c.do(ctx, http.MethodPost, "/chore", body, out)
}

func (c *Client) UpdateChore(ctx context.Context, choreID string, body any, out any) error {
	return c.do(ctx, http.MethodPut, "/chore/"+choreID, body, out)
}

func (c *Client) TriggerPayout(ctx context.Context, body any, out any) error {
	return c.do(ctx, http.MethodPost, "/api/trigger-payout", body, out)
}

// Logout revokes the refresh session server-side, then drops the local
// credentials either way.
func (c *Client) Logout(ctx context.Context) {
	if pair, ok := c.creds.Get(); ok && pair.RefreshToken != "" {
		c.do(ctx, http.MethodPost, "/user/logout", map[string]string{
			"refreshToken": pair.RefreshToken,
		}, nil)
	}
	c.creds.Clear()
}
