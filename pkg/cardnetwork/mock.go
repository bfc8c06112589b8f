package cardnetwork

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// MockClient approves everything unless told to fail. Used in dev mode
// (CARD_NETWORK_PROVIDER=mock) and in tests.
type MockClient struct {
	mu sync.Mutex

	// FailWith, when set, is returned from the next call and cleared.
	FailWith error

	// Decline makes calls return an unapproved response instead of an error.
	Decline bool

	Calls []FundsRequest
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) PullFunds(ctx context.Context, req FundsRequest) (*FundsResponse, error) {
	return m.respond(req)
}

func (m *MockClient) PushFunds(ctx context.Context, req FundsRequest) (*FundsResponse, error) {
	return m.respond(req)
}

func (m *MockClient) respond(req FundsRequest) (*FundsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.FailWith != nil {
		err := m.FailWith
		m.FailWith = nil
		return nil, err
	}

	resp := &FundsResponse{
		TransactionID: uuid.New().String(),
		ActionCode:    "00",
		Approved:      true,
	}
	if m.Decline {
		resp.ActionCode = "05"
		resp.Approved = false
	}
	resp.Raw, _ = json.Marshal(resp)
	return resp, nil
}

// CallCount reports how many transfer attempts reached the mock.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

var ErrMockNetwork = errors.New("mock card network failure")
