package cardnetwork

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newVisaTestServer(t *testing.T, actionCode string, status int) (*httptest.Server, *FundsRequest) {
	t.Helper()

	var received FundsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "api-user" || pass != "api-pass" {
			t.Errorf("basic auth = (%q, %q, %v), want configured credentials", user, pass, ok)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{
			"transactionIdentifier": "234567891234567",
			"actionCode":            actionCode,
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestVisaPushFundsApproved(t *testing.T) {
	srv, received := newVisaTestServer(t, "00", http.StatusOK)
	client := NewVisaClient(VisaConfig{BaseURL: srv.URL, UserID: "api-user", Password: "api-pass"})

	resp, err := client.PushFunds(context.Background(), FundsRequest{
		Amount:      10,
		Currency:    "USD",
		CardNumber:  "4111111111111111",
		TraceNumber: "trace-1",
	})
	if err != nil {
		t.Fatalf("push funds: %v", err)
	}
	if !resp.Approved {
		t.Error("action code 00 should be approved")
	}
	if resp.TransactionID != "234567891234567" {
		t.Errorf("transaction id = %q", resp.TransactionID)
	}
	if len(resp.Raw) == 0 {
		t.Error("raw payload not captured")
	}
	if received.TraceNumber != "trace-1" {
		t.Errorf("trace number sent = %q, want trace-1", received.TraceNumber)
	}
}

func TestVisaPullFundsDeclined(t *testing.T) {
	srv, _ := newVisaTestServer(t, "05", http.StatusOK)
	client := NewVisaClient(VisaConfig{BaseURL: srv.URL, UserID: "api-user", Password: "api-pass"})

	resp, err := client.PullFunds(context.Background(), FundsRequest{Amount: 10})
	if err != nil {
		t.Fatalf("pull funds: %v", err)
	}
	if resp.Approved {
		t.Error("action code 05 should not be approved")
	}
}

func TestVisaHTTPError(t *testing.T) {
	srv, _ := newVisaTestServer(t, "ZZ", http.StatusBadGateway)
	client := NewVisaClient(VisaConfig{BaseURL: srv.URL, UserID: "api-user", Password: "api-pass"})

	resp, err := client.PushFunds(context.Background(), FundsRequest{Amount: 10})
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
	if resp == nil || resp.ActionCode != "ZZ" {
		t.Error("expected the decoded body to come back alongside the error")
	}
}
