package cardnetwork

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	pullFundsPath = "/visadirect/fundstransfer/v1/pullfundstransactions"
	pushFundsPath = "/visadirect/fundstransfer/v1/pushfundstransactions"
)

type VisaConfig struct {
	BaseURL  string
	UserID   string
	Password string
	Timeout  time.Duration
}

type visaClient struct {
	cfg  VisaConfig
	http *http.Client
}

func NewVisaClient(cfg VisaConfig) Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &visaClient{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

func (v *visaClient) PullFunds(ctx context.Context, req FundsRequest) (*FundsResponse, error) {
	return v.post(ctx, pullFundsPath, req)
}

func (v *visaClient) PushFunds(ctx context.Context, req FundsRequest) (*FundsResponse, error) {
	return v.post(ctx, pushFundsPath, req)
}

func (v *visaClient) post(ctx context.Context, path string, req FundsRequest) (*FundsResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode funds request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(v.cfg.UserID, v.cfg.Password)

	resp, err := v.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("card network request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read card network response: %w", err)
	}

	var out FundsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode card network response (http %d): %w", resp.StatusCode, err)
	}
	out.Raw = raw

	if resp.StatusCode != http.StatusOK {
		return &out, fmt.Errorf("card network returned http %d (action code %s)", resp.StatusCode, out.ActionCode)
	}

	// Visa reports approval via action code 00.
	out.Approved = out.ActionCode == "00"
	return &out, nil
}
